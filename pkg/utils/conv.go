package utils

import (
	"strconv"
	"strings"
)

const (
	defaultPageNum  = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

func ConvertStringToInt64(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}

// NormalizePage 规整分页参数 页码从1开始 单页大小限制上限
func NormalizePage(pageNum, pageSize int64) (int64, int64) {
	if pageNum <= 0 {
		pageNum = defaultPageNum
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageNum, pageSize
}

// EscapeLike 转义LIKE模式中的特殊字符 调用方的检索词只做字面匹配
func EscapeLike(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '%', '_':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
