// Package page 상품 상세 페이지를 HTML로 렌더링하는 핸들러를 제공합니다.
package page

import (
	"embed"
	"html/template"
	"io"

	"github.com/darkkaiser/zzirit-storefront/internal/catalog"
	"github.com/iancoleman/strcase"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// 템플릿 이름
const (
	templateItemDetail = "item_detail.html"
	templateNotFound   = "not_found.html"
)

// Renderer 내장된 HTML 템플릿으로 응답을 렌더링하는 echo.Renderer 구현체입니다.
type Renderer struct {
	templates *template.Template
}

// NewRenderer 내장 템플릿을 파싱하여 Renderer를 생성합니다.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"statusClass": statusClass,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{templates: t}, nil
}

// MustNewRenderer NewRenderer와 같지만 실패하면 패닉이 발생합니다.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render echo.Renderer 인터페이스를 구현합니다.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// statusClass 타임딜 상태를 CSS 클래스 이름으로 변환합니다. 예: TIME_DEAL -> time-deal
func statusClass(s catalog.TimeDealStatus) string {
	if s == catalog.TimeDealUnknown {
		return "unknown"
	}
	return strcase.ToKebab(string(s))
}
