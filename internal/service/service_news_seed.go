package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-summary-news/models"
)

const seedSourceURL = "https://example.com"

type seedArticle struct {
	title    string
	summary  string
	imageRef string
	category models.Category
}

var starterArticles = []seedArticle{
	{
		title: "Transmitir electricidad sin cables ya no es ciencia ficción",
		summary: "Transmitir electricidad sin cables parecía cosa de ciencia ficción o, como mucho, " +
			"una locura de Nikola Tesla en pleno 1901, que imaginó un sistema capaz de " +
			"transmitirla mediante la ionosfera. Pero más de un siglo después",
		imageRef: "noticia1imagen",
		category: models.Technology,
	},
	{
		title: "La previsible derrota de Trump y cómo aprovecharla",
		summary: "Apple desarrolla en China alrededor del 90% de su producción total, afirma The New York Times. " +
			"Hacer un iPhone al 100% en Estados Unidos obligaría a venderlo en 3,500 dólares por unidad, " +
			"tres veces su precio actual, lo cual desplomaría a sus ventas.",
		imageRef: "noticia2imagen",
		category: models.Sports,
	},
	{
		title: "EE.UU. e Irán mantienen un diálogo en busca de un nuevo acuerdo nuclear",
		summary: "Desde dos salas separadas en Mascate, la capital de Omán, el enviado especial de Donald Trump, " +
			"Steve Witkoff, y el ministro de Exteriores iraní, Abás Araqchí, han intercambiado a través de " +
			"un mediador omaní sus líneas rojas en la búsqueda de un nuevo acuerdo nuclear.",
		imageRef: "noticia1imagen",
		category: models.Politics,
	},
	{
		title: "La herramienta fitness con la que trabajar brazos",
		summary: "Una buena esterilla deportiva, unas mancuernas ajustables o hasta una barra de dominadas " +
			"sin tornillos son grandes aliados para que nuestra casa se convierta en un pequeño gimnasio.",
		imageRef: "noticia2imagen",
		category: models.Health,
	},
}

// SeedIfEmpty implements [NewsService].
func (s *newsService) SeedIfEmpty(ctx context.Context, userID int64) (bool, error) {
	if userID <= 0 {
		return false, ErrNoOwner
	}

	empty, err := s.IsLocalStoreEmpty(ctx, userID)
	if err != nil || !empty {
		return false, err
	}

	now := s.now().UTC()
	rows := make([]models.Article, 0, len(starterArticles))
	for _, sa := range starterArticles {
		rows = append(rows, models.Article{
			ID:        s.ids.ArticleID(userID, seedSourceURL, sa.title),
			UserID:    userID,
			Title:     sa.title,
			Summary:   sa.summary,
			SourceURL: seedSourceURL,
			ImageRef:  sa.imageRef,
			Category:  sa.category,
			CreatedAt: now,
		})
	}

	if err = s.articles.SaveArticles(ctx, rows); err != nil {
		s.logger.Err(err).Str("func", "newsService.SeedIfEmpty").Int64("user_id", userID).Msg("error seeding starter articles")
		return false, fmt.Errorf("seed articles of user %d: %w", userID, err)
	}

	return true, nil
}

// LikeStats implements [NewsService]. Uncategorized likes count towards the
// total only.
func (s *newsService) LikeStats(ctx context.Context, userID int64) (models.LikeStats, error) {
	perCategory, err := s.articles.LikedPerCategory(ctx, userID)
	if err != nil {
		return models.LikeStats{}, fmt.Errorf("like stats of user %d: %w", userID, err)
	}

	var stats models.LikeStats
	for _, n := range perCategory {
		stats.Total += n
	}

	for _, c := range models.Categories() {
		if n := perCategory[c]; n > 0 {
			stats.PerCategory = append(stats.PerCategory, models.CategoryCount{Category: c, Likes: n})
		}
	}
	sort.SliceStable(stats.PerCategory, func(i, j int) bool {
		return stats.PerCategory[i].Likes > stats.PerCategory[j].Likes
	})

	return stats, nil
}
