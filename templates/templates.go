package templates

import (
	"embed"
	"html/template"
)

//go:embed html/*.tmpl
var files embed.FS

// Load parse toàn bộ template của trang chi tiết phòng
func Load() (*template.Template, error) {
	return template.ParseFS(files, "html/*.tmpl")
}

// Must giống Load nhưng panic khi lỗi, dùng lúc khởi động
func Must() *template.Template {
	return template.Must(Load())
}
