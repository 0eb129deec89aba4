package datasetindex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ONSdigital/dp-api-clients-go/clientlog"
	health "github.com/ONSdigital/dp-api-clients-go/health"
	healthcheck "github.com/ONSdigital/dp-healthcheck/healthcheck"
	dprequest "github.com/ONSdigital/dp-net/request"
	"github.com/ONSdigital/log.go/v2/log"
)

const service = "dataset-index-api"

// ErrInvalidDatasetIndexAPIResponse is returned when the dataset index api
// does not respond with a valid status
type ErrInvalidDatasetIndexAPIResponse struct {
	expectedCode int
	actualCode   int
	uri          string
}

// Error should be called by the user to print out the stringified version of the error
func (e ErrInvalidDatasetIndexAPIResponse) Error() string {
	return fmt.Sprintf("invalid response from dataset index api - should be: %d, got: %d, path: %s",
		e.expectedCode,
		e.actualCode,
		e.uri,
	)
}

// Code returns the status code received from the dataset index api if an error is returned
func (e ErrInvalidDatasetIndexAPIResponse) Code() int {
	return e.actualCode
}

// Client is a dataset index api client which can be used to make requests to the server
type Client struct {
	hcCli *health.Client
}

// New creates a new instance of Client with a given dataset index api url
func New(datasetIndexAPIURL string) *Client {
	return &Client{
		health.NewClient(service, datasetIndexAPIURL),
	}
}

// NewWithHealthClient creates a new instance of Client, reusing the URL and
// Clienter from the provided healthcheck client
func NewWithHealthClient(hcCli *health.Client) *Client {
	return &Client{
		health.NewClientWithClienter(service, hcCli.URL, hcCli.Client),
	}
}

// Checker calls the api health endpoint and updates the provided check state
func (c *Client) Checker(ctx context.Context, check *healthcheck.CheckState) error {
	return c.hcCli.Checker(ctx, check)
}

// GetIndex returns the dataset index document. The caller may pass empty auth
// tokens; the index itself is public. The returned index holds its records in
// document order.
func (c *Client) GetIndex(ctx context.Context, userAuthToken, serviceAuthToken string) (index Index, err error) {
	uri := fmt.Sprintf("%s/datasets", c.hcCli.URL)

	clientlog.Do(ctx, "retrieving dataset index", service, uri)

	resp, err := c.doGetWithAuthHeaders(ctx, userAuthToken, serviceAuthToken, uri)
	if err != nil {
		return index, err
	}
	defer closeResponseBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return index, ErrInvalidDatasetIndexAPIResponse{http.StatusOK, resp.StatusCode, uri}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return index, err
	}

	err = json.Unmarshal(b, &index)
	return index, err
}

// doGetWithAuthHeaders executes a GET request with the user and service auth
// tokens set as request headers. It is the caller's responsibility to ensure
// the response body is closed on completion.
func (c *Client) doGetWithAuthHeaders(ctx context.Context, userAuthToken, serviceAuthToken, uri string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	dprequest.AddFlorenceHeader(req, userAuthToken)
	dprequest.AddServiceTokenHeader(req, serviceAuthToken)
	return c.hcCli.Client.Do(ctx, req)
}

func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err)
		}
	}
}
