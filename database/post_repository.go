package database

import (
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"

	"github.com/lib/pq"
)

const postColumns = `id, user_id, content, platforms, media_urls, tags, status,
			  scheduled_for, published_at, created_at, updated_at`

func (d *Database) CreatePost(post *models.Post) error {
	query := `INSERT INTO posts (id, user_id, content, platforms, media_urls, tags, status, scheduled_for, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := d.DB.Exec(query, post.ID, post.UserID, post.Content,
		pq.Array(platformStrings(post.Platforms)), pq.Array(post.MediaURLs),
		pq.Array(post.Tags), post.Status, post.ScheduledFor, post.CreatedAt, post.UpdatedAt)
	return err
}

// UpdateEditablePost writes the post's mutable fields (including a
// draft -> scheduled status change) conditioned on the status still
// being editable at write time. Returns false when the condition
// failed, which means a claim or delete won the race.
func (d *Database) UpdateEditablePost(post *models.Post) (bool, error) {
	query := `UPDATE posts SET content = $1, platforms = $2, media_urls = $3,
			  tags = $4, status = $5, scheduled_for = $6, updated_at = $7
			  WHERE id = $8 AND status = ANY($9)`

	res, err := d.DB.Exec(query, post.Content, pq.Array(platformStrings(post.Platforms)),
		pq.Array(post.MediaURLs), pq.Array(post.Tags), post.Status, post.ScheduledFor,
		post.UpdatedAt, post.ID,
		pq.Array([]string{string(models.StatusDraft), string(models.StatusScheduled)}))
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	return n == 1, err
}

// DeletePostIf removes the post only while its status is one of the
// allowed set. Returns false when the status no longer permits deletion.
func (d *Database) DeletePostIf(id string, allowed ...models.PostStatus) (bool, error) {
	statuses := make([]string, len(allowed))
	for i, s := range allowed {
		statuses[i] = string(s)
	}

	res, err := d.DB.Exec(`DELETE FROM posts WHERE id = $1 AND status = ANY($2)`,
		id, pq.Array(statuses))
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	return n == 1, err
}

// ClaimPost performs the compare-and-swap that grants exclusive right to
// publish: scheduled -> publishing, conditioned on the prior status.
// Returns false when another claimant already won.
func (d *Database) ClaimPost(id string) (bool, error) {
	res, err := d.DB.Exec(`UPDATE posts SET status = $1, updated_at = $2
			  WHERE id = $3 AND status = $4`,
		models.StatusPublishing, time.Now(), id, models.StatusScheduled)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	return n == 1, err
}

// ClaimDuePosts atomically transitions every due scheduled post to
// "publishing" and returns the claimed set, oldest first. Concurrent
// sweeps cannot claim the same post twice: the UPDATE is conditioned on
// the scheduled status and SKIP LOCKED keeps replicas from blocking on
// each other's in-flight claims.
func (d *Database) ClaimDuePosts(now time.Time) ([]*models.Post, error) {
	query := `UPDATE posts SET status = $1, updated_at = $2
			  WHERE id IN (
			      SELECT id FROM posts
			      WHERE status = $3 AND scheduled_for <= $2
			      ORDER BY scheduled_for ASC
			      FOR UPDATE SKIP LOCKED
			  )
			  RETURNING ` + postColumns

	rows, err := d.DB.Query(query, models.StatusPublishing, now, models.StatusScheduled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, err
	}

	// RETURNING does not preserve the subquery order.
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ScheduledFor.Before(*posts[j].ScheduledFor)
	})

	return posts, nil
}

// FinalizePost writes the terminal status in a single conditional update
// keyed on the post still being in "publishing". Returns false if the
// post was not in that state.
func (d *Database) FinalizePost(id string, status models.PostStatus, publishedAt time.Time) (bool, error) {
	res, err := d.DB.Exec(`UPDATE posts SET status = $1, published_at = $2, updated_at = $3
			  WHERE id = $4 AND status = $5`,
		status, publishedAt, time.Now(), id, models.StatusPublishing)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	return n == 1, err
}

// GetPost returns the post with its per-platform results loaded, or
// (nil, nil) when no such post exists.
func (d *Database) GetPost(id string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(d.DB.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	post.Results, err = d.GetPublishResults(id)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (d *Database) GetUserPosts(userID string) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := d.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

// GetUpcomingPosts returns the user's scheduled posts due before the
// given horizon, soonest first, capped at limit.
func (d *Database) GetUpcomingPosts(userID string, until time.Time, limit int) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
			  WHERE user_id = $1 AND status = $2 AND scheduled_for <= $3
			  ORDER BY scheduled_for ASC LIMIT $4`

	rows, err := d.DB.Query(query, userID, models.StatusScheduled, until, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

// SavePublishResult upserts the per-platform outcome row for a post.
func (d *Database) SavePublishResult(postID string, result models.PublishResult) error {
	query := `INSERT INTO publish_results (post_id, platform, attempted, success, external_post_id, error, attempted_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (post_id, platform)
			  DO UPDATE SET attempted = $3, success = $4, external_post_id = $5, error = $6, attempted_at = $7`

	_, err := d.DB.Exec(query, postID, result.Platform, result.Attempted,
		result.Success, nullable(result.ExternalID), nullable(result.Error), result.AttemptedAt)
	return err
}

func (d *Database) GetPublishResults(postID string) ([]models.PublishResult, error) {
	query := `SELECT platform, attempted, success, external_post_id, error, attempted_at
			  FROM publish_results WHERE post_id = $1 ORDER BY platform`

	rows, err := d.DB.Query(query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.PublishResult{}
	for rows.Next() {
		var r models.PublishResult
		var externalID, errMsg sql.NullString

		if err := rows.Scan(&r.Platform, &r.Attempted, &r.Success,
			&externalID, &errMsg, &r.AttemptedAt); err != nil {
			return nil, err
		}

		r.ExternalID = externalID.String
		r.Error = errMsg.String
		results = append(results, r)
	}

	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	post := &models.Post{}
	var platforms, mediaURLs, tags []string

	err := row.Scan(&post.ID, &post.UserID, &post.Content, pq.Array(&platforms),
		pq.Array(&mediaURLs), pq.Array(&tags), &post.Status, &post.ScheduledFor,
		&post.PublishedAt, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}

	post.Platforms = make([]models.Platform, len(platforms))
	for i, p := range platforms {
		post.Platforms[i] = models.Platform(p)
	}
	post.MediaURLs = mediaURLs
	post.Tags = tags

	return post, nil
}

func collectPosts(rows *sql.Rows) ([]*models.Post, error) {
	posts := []*models.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func platformStrings(platforms []models.Platform) []string {
	out := make([]string, len(platforms))
	for i, p := range platforms {
		out[i] = string(p)
	}
	return out
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
