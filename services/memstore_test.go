package services

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"
)

// memStore is an in-memory PostStore/CredentialsStore/UserStore with
// the same conditional-write semantics as the Postgres implementation.
// All mutations run under one lock, so the compare-and-swap operations
// are atomic exactly like their SQL counterparts.
type memStore struct {
	mu      sync.Mutex
	posts   map[string]*models.Post
	results map[string]map[models.Platform]models.PublishResult
	creds   map[string]map[models.Platform]*models.PlatformCredentials
	users   map[string]*models.User
	fail    bool
}

func newMemStore() *memStore {
	return &memStore{
		posts:   map[string]*models.Post{},
		results: map[string]map[models.Platform]models.PublishResult{},
		creds:   map[string]map[models.Platform]*models.PlatformCredentials{},
		users:   map[string]*models.User{},
	}
}

var errStoreDown = errors.New("store down")

func copyPost(p *models.Post) *models.Post {
	cp := *p
	cp.Platforms = append([]models.Platform(nil), p.Platforms...)
	cp.MediaURLs = append([]string(nil), p.MediaURLs...)
	cp.Tags = append([]string(nil), p.Tags...)
	cp.Results = append([]models.PublishResult(nil), p.Results...)
	return &cp
}

func (m *memStore) CreatePost(post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	m.posts[post.ID] = copyPost(post)
	return nil
}

func (m *memStore) GetPost(id string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	cp := copyPost(post)
	cp.Results = m.resultsLocked(id)
	return cp, nil
}

func (m *memStore) GetUserPosts(userID string) ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	posts := []*models.Post{}
	for _, p := range m.posts {
		if p.UserID == userID {
			posts = append(posts, copyPost(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (m *memStore) GetUpcomingPosts(userID string, until time.Time, limit int) ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	posts := []*models.Post{}
	for _, p := range m.posts {
		if p.UserID == userID && p.Status == models.StatusScheduled &&
			p.ScheduledFor != nil && !p.ScheduledFor.After(until) {
			posts = append(posts, copyPost(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ScheduledFor.Before(*posts[j].ScheduledFor) })
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (m *memStore) UpdateEditablePost(post *models.Post) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false, errStoreDown
	}
	existing, ok := m.posts[post.ID]
	if !ok || (existing.Status != models.StatusDraft && existing.Status != models.StatusScheduled) {
		return false, nil
	}
	m.posts[post.ID] = copyPost(post)
	return true, nil
}

func (m *memStore) DeletePostIf(id string, allowed ...models.PostStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false, errStoreDown
	}
	existing, ok := m.posts[id]
	if !ok {
		return false, nil
	}
	for _, s := range allowed {
		if existing.Status == s {
			delete(m.posts, id)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ClaimPost(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false, errStoreDown
	}
	existing, ok := m.posts[id]
	if !ok || existing.Status != models.StatusScheduled {
		return false, nil
	}
	existing.Status = models.StatusPublishing
	existing.UpdatedAt = time.Now()
	return true, nil
}

func (m *memStore) ClaimDuePosts(now time.Time) ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	claimed := []*models.Post{}
	for _, p := range m.posts {
		if p.Status == models.StatusScheduled && p.ScheduledFor != nil && !p.ScheduledFor.After(now) {
			p.Status = models.StatusPublishing
			p.UpdatedAt = now
			claimed = append(claimed, copyPost(p))
		}
	}
	sort.Slice(claimed, func(i, j int) bool { return claimed[i].ScheduledFor.Before(*claimed[j].ScheduledFor) })
	return claimed, nil
}

func (m *memStore) FinalizePost(id string, status models.PostStatus, publishedAt time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false, errStoreDown
	}
	existing, ok := m.posts[id]
	if !ok || existing.Status != models.StatusPublishing {
		return false, nil
	}
	existing.Status = status
	existing.PublishedAt = &publishedAt
	existing.UpdatedAt = time.Now()
	return true, nil
}

func (m *memStore) SavePublishResult(postID string, result models.PublishResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	if m.results[postID] == nil {
		m.results[postID] = map[models.Platform]models.PublishResult{}
	}
	m.results[postID][result.Platform] = result
	return nil
}

func (m *memStore) GetPublishResults(postID string) ([]models.PublishResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	return m.resultsLocked(postID), nil
}

func (m *memStore) resultsLocked(postID string) []models.PublishResult {
	results := []models.PublishResult{}
	for _, r := range m.results[postID] {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Platform < results[j].Platform })
	return results
}

func (m *memStore) GetCredentials(userID string, platform models.Platform) (*models.PlatformCredentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	cred, ok := m.creds[userID][platform]
	if !ok {
		return nil, nil
	}
	cp := *cred
	return &cp, nil
}

func (m *memStore) setCredentials(userID string, platform models.Platform) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.creds[userID] == nil {
		m.creds[userID] = map[models.Platform]*models.PlatformCredentials{}
	}
	m.creds[userID][platform] = &models.PlatformCredentials{
		UserID:      userID,
		Platform:    platform,
		AccessToken: "token-" + string(platform),
	}
}

func (m *memStore) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memStore) GetUserByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) GetUserByID(id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) setFail(fail bool) {
	m.mu.Lock()
	m.fail = fail
	m.mu.Unlock()
}

// status reads a post's current status directly.
func (m *memStore) status(id string) models.PostStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.posts[id]; ok {
		return p.Status
	}
	return ""
}
