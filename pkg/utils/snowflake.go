package utils

import (
	"errors"
	"sync"
	"time"
)

const (
	epoch          = int64(1577836800000) // 2020-01-01
	workerIDBits   = uint(10)
	sequenceBits   = uint(12)
	maxWorkerID    = int64(-1 ^ (-1 << workerIDBits))
	maxSequence    = int64(-1 ^ (-1 << sequenceBits))
	timestampShift = sequenceBits + workerIDBits
	workerIDShift  = sequenceBits
)

// Snowflake 趋势递增的分布式ID生成器 实体主键统一由它产生
type Snowflake struct {
	mutex    sync.Mutex
	lastTime int64
	workerID int64
	sequence int64
}

func NewSnowflake(workerID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, errors.New("worker ID out of range")
	}
	return &Snowflake{workerID: workerID}, nil
}

func (s *Snowflake) GenerateID() int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	currentTime := time.Now().UnixMilli()
	if currentTime < s.lastTime {
		// 时钟回拨 等待追平
		time.Sleep(time.Duration(s.lastTime-currentTime) * time.Millisecond)
		currentTime = time.Now().UnixMilli()
	}

	if currentTime == s.lastTime {
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			for currentTime <= s.lastTime {
				currentTime = time.Now().UnixMilli()
			}
		}
	} else {
		s.sequence = 0
	}

	s.lastTime = currentTime
	return ((currentTime - epoch) << timestampShift) |
		(s.workerID << workerIDShift) |
		s.sequence
}

var (
	globalSnowflake *Snowflake
	snowflakeOnce   sync.Once
)

func InitSnowflake(workerID int64) error {
	var err error
	globalSnowflake, err = NewSnowflake(workerID)
	return err
}

// NewID 未初始化时惰性落到worker 1 并发首次调用也只会构造一个生成器
func NewID() int64 {
	snowflakeOnce.Do(func() {
		if globalSnowflake == nil {
			_ = InitSnowflake(1)
		}
	})
	return globalSnowflake.GenerateID()
}
