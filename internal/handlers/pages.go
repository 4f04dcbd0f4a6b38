package handlers

import (
	"net/http"

	"github.com/SumYin/formula-booklet-website/internal/models"
)

type homePage struct {
	ActivePage string
	Items      []models.BookletItem
}

type contactPage struct {
	ActivePage    string
	ContactEmail  string
	GitHubRepoURL string
}

// HandleHome renders the booklet listing. The catalog is rebuilt from the
// directory on every request, so the page always reflects the files on disk.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.home, homePage{
		ActivePage: "home",
		Items:      h.builder.Build(),
	})
}

func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.contact, contactPage{
		ActivePage:    "contact",
		ContactEmail:  h.cfg.ContactEmail,
		GitHubRepoURL: h.cfg.GitHubRepoURL,
	})
}
