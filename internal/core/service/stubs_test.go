package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

// In-memory fakes shared by the service tests in this package.

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

type memUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByName(_ context.Context, name string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByResetToken(_ context.Context, token string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ResetToken == token && u.ResetToken != "" && u.ResetExpires.After(time.Now()) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Status != nil {
		u.Status = *update.Status
	}
	if update.RoleID != nil {
		u.RoleID = *update.RoleID
	}
	return cloneUser(u), nil
}

func (r *memUserRepo) SetResetToken(_ context.Context, id, token string, expires time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ResetToken = token
	u.ResetExpires = expires
	return nil
}

func (r *memUserRepo) ResetPassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.ResetToken = ""
	u.ResetExpires = time.Time{}
	return nil
}

func (r *memUserRepo) sorted() []*domain.User {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *memUserRepo) List(_ context.Context, page, limit int) ([]*domain.User, int64, error) {
	all := r.sorted()
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, int64(len(all)), nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *memUserRepo) FindRecent(_ context.Context, n int) ([]*domain.User, error) {
	all := r.sorted()
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

type memRoleRepo struct {
	roles map[string]*domain.Role
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{roles: map[string]*domain.Role{
		"role-user":  {ID: "role-user", Name: domain.RoleUser},
		"role-admin": {ID: "role-admin", Name: domain.RoleAdmin},
	}}
}

func (r *memRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	if role, ok := r.roles[id]; ok {
		return role, nil
	}
	return nil, domain.ErrRoleNotFound
}

func (r *memRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *memRoleRepo) EnsureDefaults(context.Context) error { return nil }

type memPostRepo struct {
	seq   int
	posts map[string]*domain.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *memPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.seq++
	stored := *post
	stored.ID = fmt.Sprintf("post-%d", r.seq)
	r.posts[stored.ID] = &stored
	return &stored, nil
}

func (r *memPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	if p, ok := r.posts[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPostNotFound
}

func (r *memPostRepo) FindPublished(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memPostRepo) Update(_ context.Context, id string, update ports.PostUpdate) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Title = update.Title
	p.Content = update.Content
	if update.Published != nil {
		p.Published = *update.Published
	}
	p.CategoryID = update.CategoryID
	p.TagIDs = update.TagIDs
	return p, nil
}

func (r *memPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *memPostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

func (r *memPostRepo) FindRecent(_ context.Context, n int) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

type memTagRepo struct {
	seq  int
	tags map[string]*domain.Tag
}

func newMemTagRepo() *memTagRepo {
	return &memTagRepo{tags: make(map[string]*domain.Tag)}
}

func (r *memTagRepo) GetOrCreate(_ context.Context, name string) (*domain.Tag, error) {
	if t, ok := r.tags[name]; ok {
		return t, nil
	}
	r.seq++
	t := &domain.Tag{ID: fmt.Sprintf("tag-%d", r.seq), Name: name}
	r.tags[name] = t
	return t, nil
}

type memCommentRepo struct {
	seq      int
	comments map[string]*domain.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *memCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.seq++
	stored := *comment
	stored.ID = fmt.Sprintf("comment-%d", r.seq)
	r.comments[stored.ID] = &stored
	return &stored, nil
}

func (r *memCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	if c, ok := r.comments[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCommentNotFound
}

func (r *memCommentRepo) FindByPost(_ context.Context, postID string) ([]*domain.Comment, error) {
	byID := make(map[string]*domain.Comment)
	var top []*domain.Comment
	for _, c := range r.comments {
		if c.PostID != postID {
			continue
		}
		clone := *c
		clone.Replies = nil
		byID[clone.ID] = &clone
		if clone.ParentID == "" {
			top = append(top, &clone)
		}
	}
	for _, c := range byID {
		if c.ParentID == "" {
			continue
		}
		if parent, ok := byID[c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}
	sort.Slice(top, func(i, j int) bool { return top[i].ID > top[j].ID })
	return top, nil
}

func (r *memCommentRepo) UpdateContent(_ context.Context, id, content string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	c.Content = content
	return c, nil
}

func (r *memCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *memCommentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.comments)), nil
}

type memCategoryRepo struct {
	seq        int
	categories map[string]*domain.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *memCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return nil, domain.ErrCategoryExists
		}
	}
	r.seq++
	stored := *category
	stored.ID = fmt.Sprintf("category-%d", r.seq)
	r.categories[stored.ID] = &stored
	return &stored, nil
}

func (r *memCategoryRepo) FindAll(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *memCategoryRepo) Update(_ context.Context, id string, update ports.CategoryUpdate) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	c.Name = update.Name
	c.Description = update.Description
	return c, nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *memCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

type memFileRepo struct {
	seq   int
	files map[string]*domain.File
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{files: make(map[string]*domain.File)}
}

func (r *memFileRepo) Create(_ context.Context, file *domain.File) (*domain.File, error) {
	r.seq++
	stored := *file
	stored.ID = fmt.Sprintf("file-%d", r.seq)
	r.files[stored.ID] = &stored
	return &stored, nil
}

func (r *memFileRepo) FindByID(_ context.Context, id string) (*domain.File, error) {
	if f, ok := r.files[id]; ok {
		return f, nil
	}
	return nil, domain.ErrFileNotFound
}

func (r *memFileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.files[id]; !ok {
		return domain.ErrFileNotFound
	}
	delete(r.files, id)
	return nil
}

type memBlobStore struct {
	saved     map[string][]byte
	removed   []string
	removeErr error
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{saved: make(map[string][]byte)}
}

func (s *memBlobStore) Save(filename string, data []byte) (string, error) {
	s.saved[filename] = data
	return "/uploads/" + filename, nil
}

func (s *memBlobStore) Remove(path string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, path)
	return nil
}

type sentMail struct {
	to      string
	subject string
	html    string
}

type stubMailer struct {
	sent []sentMail
	err  error
}

func (m *stubMailer) Send(_ context.Context, to, subject, html string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}

type memStatsCache struct {
	snapshot *ports.StatsSnapshot
	getErr   error
	sets     int
}

func (c *memStatsCache) Get(context.Context) (*ports.StatsSnapshot, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.snapshot, nil
}

func (c *memStatsCache) Set(_ context.Context, snapshot *ports.StatsSnapshot) error {
	c.snapshot = snapshot
	c.sets++
	return nil
}
