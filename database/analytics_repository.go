package database

import (
	"github.com/UjjwalCodes01/ai-social-media-platform/models"
)

// GetAnalyticsSummary aggregates the user's post counts by status and
// publish outcomes by platform.
func (d *Database) GetAnalyticsSummary(userID string) (*models.AnalyticsSummary, error) {
	summary := &models.AnalyticsSummary{
		PostsByStatus: map[models.PostStatus]int{},
		ByPlatform:    []models.PlatformAnalytics{},
	}

	rows, err := d.DB.Query(`SELECT status, COUNT(*) FROM posts WHERE user_id = $1 GROUP BY status`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status models.PostStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary.PostsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	platformRows, err := d.DB.Query(`
		SELECT r.platform,
		       COUNT(*) FILTER (WHERE r.success),
		       COUNT(*) FILTER (WHERE NOT r.success)
		FROM publish_results r
		JOIN posts p ON p.id = r.post_id
		WHERE p.user_id = $1
		GROUP BY r.platform
		ORDER BY r.platform`, userID)
	if err != nil {
		return nil, err
	}
	defer platformRows.Close()

	for platformRows.Next() {
		var pa models.PlatformAnalytics
		if err := platformRows.Scan(&pa.Platform, &pa.Succeeded, &pa.Failed); err != nil {
			return nil, err
		}
		summary.ByPlatform = append(summary.ByPlatform, pa)
	}

	return summary, platformRows.Err()
}
