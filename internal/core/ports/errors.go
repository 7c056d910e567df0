package ports

import "errors"

// 定義 Ports 層級通用的錯誤
var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
