package markko

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// BlogsService wraps the blog post and blog category endpoints.
type BlogsService struct {
	client *Client
}

// ListPosts returns blog posts.
func (s *BlogsService) ListPosts(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/blog/posts", opts.values(), oauth)
}

// ListCategories returns blog categories.
func (s *BlogsService) ListCategories(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/blog/categories", opts.values(), oauth)
}

// ListPostsByCategory returns posts under a blog category.
func (s *BlogsService) ListPostsByCategory(ctx context.Context, categoryID int, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	v := opts.values()
	v.Set("category_id", strconv.Itoa(categoryID))
	return s.client.get(ctx, "/api/v1/blog/posts", v, oauth)
}

// GetPost returns a single blog post by ID.
func (s *BlogsService) GetPost(ctx context.Context, id int, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/blog/posts/%d", id), opts.values(), oauth)
}

// GetPostBySlug returns a single blog post by slug.
func (s *BlogsService) GetPostBySlug(ctx context.Context, slug string, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/blog/posts/slug/"+url.PathEscape(slug), opts.values(), oauth)
}

// GetCategoryBySlug returns a blog category by slug.
func (s *BlogsService) GetCategoryBySlug(ctx context.Context, slug string, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/blog/categories/slug/"+url.PathEscape(slug), opts.values(), oauth)
}
