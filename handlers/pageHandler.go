package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"escro/internal/game"
	"escro/scoretable"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the page templates.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"score": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
		"totalClass": func(h scoretable.Highlight) string {
			switch h {
			case scoretable.HighlightMax:
				return "total-max"
			case scoretable.HighlightMin:
				return "total-min"
			}
			return "total"
		},
		"highlightAt": func(hs []scoretable.Highlight, i int) scoretable.Highlight {
			if i < 0 || i >= len(hs) {
				return scoretable.HighlightNone
			}
			return hs[i]
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
}

// IndexHandler renders the score table page.
func IndexHandler(c *gin.Context, session *game.Session) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Table":      session.View(),
		"MaxPlayers": scoretable.MaxPlayers,
	})
}

// The form handlers below back the HTML page. Each applies one action and
// redirects back to the page.

func FormAddPlayerHandler(c *gin.Context, session *game.Session) {
	session.Dispatch(scoretable.AddPlayer{Name: c.PostForm("name")})
	backToIndex(c)
}

func FormRemovePlayerHandler(c *gin.Context, session *game.Session, logger *zap.Logger) {
	index, ok := pathIndex(c, "index", logger)
	if !ok {
		return
	}
	session.Dispatch(scoretable.RemovePlayer{Index: index})
	backToIndex(c)
}

func FormAddRoundHandler(c *gin.Context, session *game.Session) {
	session.Dispatch(scoretable.AddRound{})
	backToIndex(c)
}

func FormUpdateScoreHandler(c *gin.Context, session *game.Session, logger *zap.Logger) {
	round, ok := pathIndex(c, "round", logger)
	if !ok {
		return
	}
	player, ok := pathIndex(c, "player", logger)
	if !ok {
		return
	}
	session.Dispatch(scoretable.UpdateScore{Round: round, Player: player, Value: c.PostForm("value")})
	backToIndex(c)
}

func FormResetHandler(c *gin.Context, session *game.Session) {
	session.Dispatch(scoretable.Reset{})
	backToIndex(c)
}

func backToIndex(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
