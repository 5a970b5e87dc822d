package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

type memUsers struct {
	m map[string]*entity.User
}

func newMemUsers(users ...*entity.User) *memUsers {
	r := &memUsers{m: map[string]*entity.User{}}
	for _, u := range users {
		r.m[u.ID] = u
	}
	return r
}

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	for _, x := range r.m {
		if x.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.m[u.ID] = &cp
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.m {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsers) List(ctx context.Context, opts repository.ListOptions) ([]*entity.User, error) {
	return r.Filter(ctx, nil, opts)
}

func (r *memUsers) Filter(_ context.Context, fields repository.Fields, _ repository.ListOptions) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.m {
		if role, ok := fields["role"]; ok && u.Role != role {
			continue
		}
		if active, ok := fields["active"]; ok && u.Active != active {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (r *memUsers) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.m[u.ID] = &cp
	return nil
}

func (r *memUsers) Delete(_ context.Context, id string) error {
	delete(r.m, id)
	return nil
}

type memProducts struct {
	m       map[string]*entity.Product
	lastOpt repository.ListOptions
	filters []repository.Fields
}

func newMemProducts() *memProducts { return &memProducts{m: map[string]*entity.Product{}} }

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.m[p.ID] = &cp
	return nil
}

func (r *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProducts) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Product, error) {
	return r.Filter(ctx, nil, opts)
}

func (r *memProducts) Filter(_ context.Context, fields repository.Fields, opts repository.ListOptions) ([]*entity.Product, error) {
	r.lastOpt = opts
	if fields != nil {
		r.filters = append(r.filters, fields)
	}
	var out []*entity.Product
	for _, p := range r.m {
		if code, ok := fields["code"]; ok && p.Code != code {
			continue
		}
		if active, ok := fields["active"]; ok && p.Active != active {
			continue
		}
		if opts.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(opts.Search)) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProducts) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.m[p.ID] = &cp
	return nil
}

func (r *memProducts) Delete(_ context.Context, id string) error {
	delete(r.m, id)
	return nil
}

type memPerms struct {
	m map[string]*entity.ScreenPermission
}

func newMemPerms(perms ...*entity.ScreenPermission) *memPerms {
	r := &memPerms{m: map[string]*entity.ScreenPermission{}}
	for _, p := range perms {
		r.m[p.ID] = p
	}
	return r
}

func (r *memPerms) Create(_ context.Context, p *entity.ScreenPermission) error {
	cp := *p
	r.m[p.ID] = &cp
	return nil
}

func (r *memPerms) GetByID(_ context.Context, id string) (*entity.ScreenPermission, error) {
	p, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPerms) List(ctx context.Context, opts repository.ListOptions) ([]*entity.ScreenPermission, error) {
	return r.Filter(ctx, nil, opts)
}

func (r *memPerms) Filter(_ context.Context, fields repository.Fields, _ repository.ListOptions) ([]*entity.ScreenPermission, error) {
	var out []*entity.ScreenPermission
	for _, p := range r.m {
		if v, ok := fields["user_id"]; ok && p.UserID != v {
			continue
		}
		if v, ok := fields["screen_name"]; ok && p.ScreenName != v {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPerms) Update(_ context.Context, p *entity.ScreenPermission) error {
	cp := *p
	r.m[p.ID] = &cp
	return nil
}

func (r *memPerms) Delete(_ context.Context, id string) error {
	delete(r.m, id)
	return nil
}

type memClients struct {
	m       map[string]*entity.Client
	filters []repository.Fields
}

func newMemClients() *memClients { return &memClients{m: map[string]*entity.Client{}} }

func (r *memClients) Create(_ context.Context, c *entity.Client) error {
	cp := *c
	r.m[c.ID] = &cp
	return nil
}

func (r *memClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClients) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Client, error) {
	return r.Filter(ctx, nil, opts)
}

func (r *memClients) Filter(_ context.Context, fields repository.Fields, _ repository.ListOptions) ([]*entity.Client, error) {
	if fields != nil {
		r.filters = append(r.filters, fields)
	}
	var out []*entity.Client
	for _, c := range r.m {
		if active, ok := fields["active"]; ok && c.Active != active {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memClients) Update(_ context.Context, c *entity.Client) error {
	cp := *c
	r.m[c.ID] = &cp
	return nil
}

func (r *memClients) Delete(_ context.Context, id string) error {
	delete(r.m, id)
	return nil
}

type memNegotiationTypes struct {
	m map[string]*entity.NegotiationType
}

func newMemNegotiationTypes() *memNegotiationTypes {
	return &memNegotiationTypes{m: map[string]*entity.NegotiationType{}}
}

func (r *memNegotiationTypes) Create(_ context.Context, nt *entity.NegotiationType) error {
	cp := *nt
	r.m[nt.ID] = &cp
	return nil
}

func (r *memNegotiationTypes) GetByID(_ context.Context, id string) (*entity.NegotiationType, error) {
	nt, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *nt
	return &cp, nil
}

func (r *memNegotiationTypes) List(ctx context.Context, opts repository.ListOptions) ([]*entity.NegotiationType, error) {
	return r.Filter(ctx, nil, opts)
}

func (r *memNegotiationTypes) Filter(_ context.Context, fields repository.Fields, _ repository.ListOptions) ([]*entity.NegotiationType, error) {
	var out []*entity.NegotiationType
	for _, nt := range r.m {
		if code, ok := fields["code"]; ok && nt.Code != code {
			continue
		}
		if active, ok := fields["active"]; ok && nt.Active != active {
			continue
		}
		cp := *nt
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memNegotiationTypes) Update(_ context.Context, nt *entity.NegotiationType) error {
	cp := *nt
	r.m[nt.ID] = &cp
	return nil
}

func (r *memNegotiationTypes) Delete(_ context.Context, id string) error {
	delete(r.m, id)
	return nil
}
