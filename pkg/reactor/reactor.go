package reactor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/avdberg/tagaudit/pkg/property"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=reactor.go -destination=mocks/reactor.gen.go -package=mocks

const (
	// DefaultBaseURL is the production Reactor API endpoint.
	DefaultBaseURL = "https://reactor.adobe.io"
	// DefaultTokenURL is the Adobe IMS OAuth server-to-server token endpoint.
	DefaultTokenURL = "https://ims-na1.adobelogin.com/ims/token/v3"
	// acceptHeader is the JSON:API media type the Reactor API requires.
	acceptHeader = "application/vnd.api+json;revision=1"
	// pageSize is the number of resources requested per page.
	pageSize = 100
)

// Client interface provides access to the Reactor resources of an
// organization. All listing calls follow pagination to exhaustion and return
// resources in API order.
type Client interface {
	// ListCompanies lists the companies the credentials give access to.
	ListCompanies(ctx context.Context) ([]property.Company, error)

	// ListProperties lists the properties of a company.
	ListProperties(ctx context.Context, companyID string) ([]property.Property, error)

	// ListDataElements lists the data elements of a property.
	ListDataElements(ctx context.Context, propertyID string) ([]property.DataElement, error)

	// ListRules lists the rules of a property.
	ListRules(ctx context.Context, propertyID string) ([]property.Rule, error)

	// ListRuleComponents lists the components of a single rule. The owning
	// rule's name is not part of the response; callers resolve it from the
	// rule they queried.
	ListRuleComponents(ctx context.Context, ruleID string) ([]property.RuleComponent, error)

	// ListExtensions lists the installed extensions of a property.
	ListExtensions(ctx context.Context, propertyID string) ([]property.Extension, error)
}

// NewClientParams contains parameters for creating a new Client instance.
type NewClientParams struct {
	OrgID        string
	ClientID     string
	ClientSecret string
	// BaseURL overrides the Reactor endpoint, used in tests.
	BaseURL string
	// TokenURL overrides the IMS token endpoint, used in tests.
	TokenURL   string
	HTTPClient *http.Client
}

type realClient struct {
	orgID        string
	clientID     string
	clientSecret string
	baseURL      string
	tokenURL     string
	httpClient   *http.Client

	// token cache, guarded for concurrent calls.
	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a new Reactor API client.
func NewClient(params NewClientParams) (Client, error) {
	if params.OrgID == "" || params.ClientID == "" || params.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	tokenURL := params.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &realClient{
		orgID:        params.OrgID,
		clientID:     params.ClientID,
		clientSecret: params.ClientSecret,
		baseURL:      baseURL,
		tokenURL:     tokenURL,
		httpClient:   httpClient,
	}, nil
}

// ListCompanies lists the companies the credentials give access to.
func (c *realClient) ListCompanies(ctx context.Context) ([]property.Company, error) {
	resources, err := c.listAll(ctx, "/companies")
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := make([]property.Company, 0, len(resources))
	for _, res := range resources {
		companies = append(companies, property.Company{
			ID:   res.ID,
			Name: attrString(res.Attributes, "name"),
		})
	}
	return companies, nil
}

// ListProperties lists the properties of a company.
func (c *realClient) ListProperties(ctx context.Context, companyID string) ([]property.Property, error) {
	resources, err := c.listAll(ctx, "/companies/"+url.PathEscape(companyID)+"/properties")
	if err != nil {
		return nil, fmt.Errorf("failed to list properties of company %s: %w", companyID, err)
	}

	properties := make([]property.Property, 0, len(resources))
	for _, res := range resources {
		properties = append(properties, property.Property{
			ID:       res.ID,
			Name:     attrString(res.Attributes, "name"),
			Platform: attrString(res.Attributes, "platform"),
		})
	}
	return properties, nil
}

// ListDataElements lists the data elements of a property.
func (c *realClient) ListDataElements(ctx context.Context, propertyID string) ([]property.DataElement, error) {
	resources, err := c.listAll(ctx, "/properties/"+url.PathEscape(propertyID)+"/data_elements")
	if err != nil {
		return nil, fmt.Errorf("failed to list data elements of property %s: %w", propertyID, err)
	}

	dataElements := make([]property.DataElement, 0, len(resources))
	for _, res := range resources {
		dataElements = append(dataElements, property.DataElement{
			ID:         res.ID,
			Name:       attrString(res.Attributes, "name"),
			Attributes: res.Attributes,
		})
	}
	return dataElements, nil
}

// ListRules lists the rules of a property.
func (c *realClient) ListRules(ctx context.Context, propertyID string) ([]property.Rule, error) {
	resources, err := c.listAll(ctx, "/properties/"+url.PathEscape(propertyID)+"/rules")
	if err != nil {
		return nil, fmt.Errorf("failed to list rules of property %s: %w", propertyID, err)
	}

	rules := make([]property.Rule, 0, len(resources))
	for _, res := range resources {
		enabled, _ := res.Attributes["enabled"].(bool)
		rules = append(rules, property.Rule{
			ID:      res.ID,
			Name:    attrString(res.Attributes, "name"),
			Enabled: enabled,
		})
	}
	return rules, nil
}

// ListRuleComponents lists the components of a single rule.
func (c *realClient) ListRuleComponents(ctx context.Context, ruleID string) ([]property.RuleComponent, error) {
	resources, err := c.listAll(ctx, "/rules/"+url.PathEscape(ruleID)+"/rule_components")
	if err != nil {
		return nil, fmt.Errorf("failed to list components of rule %s: %w", ruleID, err)
	}

	components := make([]property.RuleComponent, 0, len(resources))
	for _, res := range resources {
		components = append(components, property.RuleComponent{
			ID:                   res.ID,
			Name:                 attrString(res.Attributes, "name"),
			DelegateDescriptorID: attrString(res.Attributes, "delegate_descriptor_id"),
			RuleID:               ruleID,
			Attributes:           res.Attributes,
		})
	}
	return components, nil
}

// ListExtensions lists the installed extensions of a property.
func (c *realClient) ListExtensions(ctx context.Context, propertyID string) ([]property.Extension, error) {
	resources, err := c.listAll(ctx, "/properties/"+url.PathEscape(propertyID)+"/extensions")
	if err != nil {
		return nil, fmt.Errorf("failed to list extensions of property %s: %w", propertyID, err)
	}

	extensions := make([]property.Extension, 0, len(resources))
	for _, res := range resources {
		extensions = append(extensions, property.Extension{
			ID:         res.ID,
			Name:       attrString(res.Attributes, "name"),
			Attributes: res.Attributes,
		})
	}
	return extensions, nil
}

// resource is a JSON:API resource object.
type resource struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
}

// listResponse is the JSON:API envelope of a collection response.
type listResponse struct {
	Data []resource `json:"data"`
	Meta struct {
		Pagination struct {
			CurrentPage int  `json:"current_page"`
			NextPage    *int `json:"next_page"`
			TotalPages  int  `json:"total_pages"`
		} `json:"pagination"`
	} `json:"meta"`
}

// listAll fetches every page of a collection endpoint.
func (c *realClient) listAll(ctx context.Context, path string) ([]resource, error) {
	var resources []resource

	page := 1
	for {
		envelope, err := c.getPage(ctx, path, page)
		if err != nil {
			return nil, err
		}
		resources = append(resources, envelope.Data...)

		next := envelope.Meta.Pagination.NextPage
		if next == nil || *next <= page {
			return resources, nil
		}
		page = *next
	}
}

// getPage fetches one page of a collection endpoint.
func (c *realClient) getPage(ctx context.Context, path string, page int) (*listResponse, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("page[size]", strconv.Itoa(pageSize))
	query.Set("page[number]", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Api-Key", c.clientID)
	req.Header.Set("X-Gw-Ims-Org-Id", c.orgID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var envelope listResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	return &envelope, nil
}

// checkStatus maps error responses to sentinel errors.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Request.URL.Path)
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}
}

// attrString reads a string attribute, returning "" when absent or not a
// string.
func attrString(attributes map[string]any, key string) string {
	value, _ := attributes[key].(string)
	return value
}
