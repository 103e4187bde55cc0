package views

import (
	"embed"
	"html/template"
	"io"
	"net/url"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names accepted by Render.
const (
	LevelsTemplate      = "levels"
	LevelTemplate       = "level"
	PlayerTemplate      = "player"
	LeaderboardTemplate = "leaderboard"
	ErrorTemplate       = "error"
)

var templates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"levelURL": func(id string) string {
		return "/level?id=" + url.QueryEscape(id)
	},
	"playerURL": func(name string) string {
		return "/player?name=" + url.QueryEscape(name)
	},
}).ParseFS(templateFS, "templates/*.html"))

// Render executes the named page template with data.
func Render(w io.Writer, name string, data any) error {
	return templates.ExecuteTemplate(w, name, data)
}
