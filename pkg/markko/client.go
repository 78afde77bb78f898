// Package markko provides a typed Go client for the Markko marketplace
// REST API. Authentication is handled transparently: every request goes
// through a transport that resolves an OAuth2 bearer token from the
// client-credentials cache, or from a caller-supplied per-call token.
package markko

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

const tracerName = "github.com/markkohq/markko-go"

// Client is the entry point to the SDK. Construct it once with New and
// use the per-resource services. A Client owns its token cache, so
// multiple independently configured clients can coexist in one process.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	source     *auth.TokenSource
	limiter    *RateLimiter
	logger     *slog.Logger
	tracer     trace.Tracer
	nowFunc    func() time.Time

	Auth                *AuthService
	Addresses           *AddressesService
	Attributes          *AttributesService
	Blogs               *BlogsService
	Carts               *CartsService
	Categories          *CategoriesService
	Charities           *CharitiesService
	Checkouts           *CheckoutsService
	Commissions         *CommissionsService
	Contacts            *ContactsService
	Currencies          *CurrenciesService
	Donations           *DonationsService
	Events              *EventsService
	Files               *FilesService
	Images              *ImagesService
	Messages            *MessagesService
	Orders              *OrdersService
	PaymentMethods      *PaymentMethodsService
	Products            *ProductsService
	ReferenceValues     *ReferenceValuesService
	Reviews             *ReviewsService
	Shippings           *ShippingsService
	Specifications      *SpecificationsService
	SpecificationGroups *SpecificationGroupsService
	Tags                *TagsService
	Users               *UsersService
	Vendors             *VendorsService
}

// Option configures the Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient  *http.Client
	logger      *slog.Logger
	observer    auth.Observer
	limiter     *RateLimiter
	nowFunc     func() time.Time
	tokenClient *http.Client
}

// WithHTTPClient overrides the HTTP client used for resource requests.
// Its transport is wrapped by the authenticating transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithLogger enables structured diagnostics for the token lifecycle.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithObserver installs a token lifecycle observer. Takes precedence
// over the logger-based observer.
func WithObserver(obs auth.Observer) Option {
	return func(o *clientOptions) {
		o.observer = obs
	}
}

// WithRateLimiter injects a limiter that controls per-second and daily
// outbound call limits. When set, every resource call waits on it first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(o *clientOptions) {
		o.limiter = r
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(o *clientOptions) {
		o.nowFunc = f
	}
}

// WithTokenHTTPClient overrides the HTTP client used for token endpoint
// requests only.
func WithTokenHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.tokenClient = hc
	}
}

// New creates a Client for the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	var sourceOpts []auth.SourceOption
	if o.observer != nil {
		sourceOpts = append(sourceOpts, auth.WithObserver(o.observer))
	} else if o.logger != nil {
		sourceOpts = append(sourceOpts, auth.WithObserver(auth.NewLogObserver(o.logger)))
	}
	if o.nowFunc != nil {
		sourceOpts = append(sourceOpts, auth.WithNowFunc(o.nowFunc))
	}
	if o.tokenClient != nil {
		sourceOpts = append(sourceOpts, auth.WithHTTPClient(o.tokenClient))
	}
	sourceOpts = append(sourceOpts, auth.WithCacheExternalRefresh(cfg.CacheExternalRefresh))

	source := auth.NewTokenSource(cfg.credentials(), sourceOpts...)

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	var transportOpts []auth.TransportOption
	if httpClient.Transport != nil {
		transportOpts = append(transportOpts, auth.WithBaseTransport(httpClient.Transport))
	}
	// Wrap, don't replace: the caller's transport stays underneath.
	authed := *httpClient
	authed.Transport = auth.NewTransport(source, cfg.Origin, transportOpts...)

	c := &Client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.APIBasePath, "/"),
		httpClient: &authed,
		source:     source,
		limiter:    o.limiter,
		logger:     o.logger,
		tracer:     otel.Tracer(tracerName),
		nowFunc:    time.Now,
	}
	if o.nowFunc != nil {
		c.nowFunc = o.nowFunc
	}

	c.Auth = &AuthService{client: c}
	c.Addresses = &AddressesService{client: c}
	c.Attributes = &AttributesService{client: c}
	c.Blogs = &BlogsService{client: c}
	c.Carts = &CartsService{client: c}
	c.Categories = &CategoriesService{client: c}
	c.Charities = &CharitiesService{client: c}
	c.Checkouts = &CheckoutsService{client: c}
	c.Commissions = &CommissionsService{client: c}
	c.Contacts = &ContactsService{client: c}
	c.Currencies = &CurrenciesService{client: c}
	c.Donations = &DonationsService{client: c}
	c.Events = &EventsService{client: c}
	c.Files = &FilesService{client: c}
	c.Images = &ImagesService{client: c}
	c.Messages = &MessagesService{client: c}
	c.Orders = &OrdersService{client: c}
	c.PaymentMethods = &PaymentMethodsService{client: c}
	c.Products = &ProductsService{client: c}
	c.ReferenceValues = &ReferenceValuesService{client: c}
	c.Reviews = &ReviewsService{client: c}
	c.Shippings = &ShippingsService{client: c}
	c.Specifications = &SpecificationsService{client: c}
	c.SpecificationGroups = &SpecificationGroupsService{client: c}
	c.Tags = &TagsService{client: c}
	c.Users = &UsersService{client: c}
	c.Vendors = &VendorsService{client: c}

	return c, nil
}

// Token resolves a client-credentials access token from the shared
// cache, acquiring or refreshing as needed.
func (c *Client) Token(ctx context.Context) (string, error) {
	return c.source.Resolve(ctx, nil)
}

// TokenSource exposes the token lifecycle manager, e.g. to share it
// with custom transports.
func (c *Client) TokenSource() *auth.TokenSource {
	return c.source
}
