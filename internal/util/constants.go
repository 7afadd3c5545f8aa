package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 图片上传相关常量
const (
	MimeImage       = "image/"
	MimeOctetStream = "application/octet-stream"

	MaxUploadSize = 10 << 20 // 10MB
)

var (
	AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)
