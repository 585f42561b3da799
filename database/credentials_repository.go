package database

import (
	"database/sql"
	"errors"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"
)

func (d *Database) SaveCredentials(cred *models.PlatformCredentials) error {
	query := `INSERT INTO credentials (id, user_id, platform, access_token, refresh_token, token_type, expires_at, platform_user_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  ON CONFLICT (user_id, platform)
			  DO UPDATE SET access_token = $4, refresh_token = $5, token_type = $6,
			                expires_at = $7, platform_user_id = $8, updated_at = $10`

	_, err := d.DB.Exec(query, cred.ID, cred.UserID, cred.Platform,
		cred.AccessToken, cred.RefreshToken, cred.TokenType, cred.ExpiresAt,
		cred.PlatformUserID, cred.CreatedAt, cred.UpdatedAt)
	return err
}

// GetCredentials returns the user's stored credentials for a platform,
// or (nil, nil) when the platform has never been connected.
func (d *Database) GetCredentials(userID string, platform models.Platform) (*models.PlatformCredentials, error) {
	cred := &models.PlatformCredentials{}
	var refreshToken, platformUserID sql.NullString

	query := `SELECT id, user_id, platform, access_token, refresh_token, token_type, expires_at, platform_user_id, created_at, updated_at
			  FROM credentials WHERE user_id = $1 AND platform = $2`

	err := d.DB.QueryRow(query, userID, platform).Scan(&cred.ID, &cred.UserID,
		&cred.Platform, &cred.AccessToken, &refreshToken, &cred.TokenType,
		&cred.ExpiresAt, &platformUserID, &cred.CreatedAt, &cred.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cred.RefreshToken = refreshToken.String
	cred.PlatformUserID = platformUserID.String
	return cred, nil
}

// GetConnectedPlatforms lists the platforms the user has credentials for.
func (d *Database) GetConnectedPlatforms(userID string) ([]models.Platform, error) {
	rows, err := d.DB.Query(`SELECT platform FROM credentials WHERE user_id = $1 ORDER BY platform`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	platforms := []models.Platform{}
	for rows.Next() {
		var p models.Platform
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}

	return platforms, rows.Err()
}

func (d *Database) DeleteCredentials(userID string, platform models.Platform) error {
	_, err := d.DB.Exec(`DELETE FROM credentials WHERE user_id = $1 AND platform = $2`, userID, platform)
	return err
}
