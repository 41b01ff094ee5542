package model

// User 由外部认证系统维护 本服务只读
type User struct {
	UserId     int64  `json:"user_id" gorm:"primaryKey;column:user_id"`
	FullName   string `json:"full_name" gorm:"column:full_name;type:varchar(255)"`
	Email      string `json:"email" gorm:"column:email;type:varchar(255)"`
	Avatar     string `json:"avatar" gorm:"column:avatar;type:varchar(512)"`
	CoverImage string `json:"cover_image" gorm:"column:cover_image;type:varchar(512)"`
	Password   string `json:"-" gorm:"column:password;type:varchar(255)"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary 返回给前端的安全字段子集 绝不包含密码等敏感列
type UserSummary struct {
	UserId     int64  `json:"user_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	CoverImage string `json:"cover_image,omitempty"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		UserId:     u.UserId,
		FullName:   u.FullName,
		Email:      u.Email,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
	}
}
