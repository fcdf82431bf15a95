// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-summary-news/models"
)

const (
	createUser = `INSERT INTO usuarios (name, email, password)
    VALUES (?, ?, ?)
    RETURNING id, name, email, password, created_at;`

	findUserByCredentials = `SELECT id, name, email, password, created_at
    FROM usuarios
    WHERE email = ? AND password = ?;`

	findUserByEmail = `SELECT id, name, email, password, created_at
    FROM usuarios
    WHERE email = ?;`

	findUserByID = `SELECT id, name, email, password, created_at
    FROM usuarios
    WHERE id = ?;`

	deleteUser = `DELETE FROM usuarios WHERE id = ?;`

	saveArticle = `
		INSERT OR REPLACE INTO noticias (
			id,
			user_id,
			title,
			summary,
			source_url,
			image_url,
			image_ref,
			category,
			liked,
			saved,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	getArticle = `
		SELECT
			id,
			user_id,
			title,
			summary,
			source_url,
			image_url,
			image_ref,
			category,
			liked,
			saved,
			created_at
		FROM noticias
		WHERE id = ? AND user_id = ?;`

	countArticles = `SELECT COUNT(*) FROM noticias WHERE user_id = ?;`

	// legacy global count, not scoped by owner
	countAllArticles = `SELECT COUNT(*) FROM noticias;`

	updateArticle = `
		UPDATE noticias SET
			title      = ?,
			summary    = ?,
			source_url = ?,
			image_url  = ?,
			image_ref  = ?,
			category   = ?,
			liked      = ?,
			saved      = ?
		WHERE id = ? AND user_id = ?;`

	setLiked = `UPDATE noticias SET liked = ? WHERE id = ? AND user_id = ?;`

	setSaved = `UPDATE noticias SET saved = ? WHERE id = ? AND user_id = ?;`

	deleteArticle = `DELETE FROM noticias WHERE id = ? AND user_id = ?;`

	likedPerCategory = `
		SELECT category, COUNT(*)
		FROM noticias
		WHERE user_id = ? AND liked = 1
		GROUP BY category;`
)

var articleColumns = []string{
	"id",
	"user_id",
	"title",
	"summary",
	"source_url",
	"image_url",
	"image_ref",
	"category",
	"liked",
	"saved",
	"created_at",
}

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSelectArticlesQuery builds the user-scoped article query described by
// filter. A nil or wildcard category adds no category condition.
func buildSelectArticlesQuery(filter models.ArticleFilter) (string, []any, error) {
	query := sqlite.
		Select(articleColumns...).
		From("noticias").
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC", "id")

	if filter.Category != nil && !filter.Category.IsWildcard() {
		query = query.Where(sq.Eq{"category": string(*filter.Category)})
	}
	if filter.SavedOnly {
		query = query.Where(sq.Eq{"saved": true})
	}
	if filter.LikedOnly {
		query = query.Where(sq.Eq{"liked": true})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

// buildDeleteArticlesQuery builds a delete restricted to ids owned by userID.
func buildDeleteArticlesQuery(userID int64, ids []string) (string, []any, error) {
	return sqlite.
		Delete("noticias").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": ids}).
		ToSql()
}
