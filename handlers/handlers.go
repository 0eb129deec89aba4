package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/ONSdigital/dp-api-clients-go/headers"
	"github.com/ONSdigital/dp-cookies/cookies"
	dprequest "github.com/ONSdigital/dp-net/request"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/ONSdigital/dp-frontend-dataset-index-controller/datasetindex"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/mapper"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/model"
)

//go:generate moq -out mocks_handlers.go . DatasetIndexClient RenderClient

// datasetIndexTemplate is the page template the render handler builds
const datasetIndexTemplate = "dataset-index"

// DatasetIndexClient is an interface with methods required for a dataset index client
type DatasetIndexClient interface {
	GetIndex(ctx context.Context, userAuthToken string, serviceAuthToken string) (index datasetindex.Index, err error)
}

// RenderClient is an interface with methods required for rendering a page template
type RenderClient interface {
	BuildPage(w io.Writer, pageModel interface{}, templateName string) error
}

// ClientError is an interface that can be used to retrieve the status code if a client has errored
type ClientError interface {
	error
	Code() int
}

func setStatusCode(req *http.Request, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if err, ok := err.(ClientError); ok {
		if err.Code() == http.StatusNotFound {
			status = err.Code()
		}
		log.Error(req.Context(), "setting response status", err, log.Data{"status": status})
	}
	w.WriteHeader(status)
}

// DatasetIndexRender fetches the dataset index and renders it as the datasets
// table page. A fetch or render failure skips rendering entirely and answers
// with an error status rather than a partial page.
func DatasetIndexRender(rend RenderClient, cli DatasetIndexClient) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		userAuthToken := getUserAuthToken(ctx, req)
		serviceAuthToken := getServiceAuthToken(req)

		index, err := cli.GetIndex(ctx, userAuthToken, serviceAuthToken)
		if err != nil {
			log.Error(ctx, "error getting dataset index", err)
			setStatusCode(req, w, err)
			return
		}

		page := mapper.CreateDatasetIndexPage(index)

		preferences := cookies.GetCookiePreferences(req)
		page.CookiesPreferencesSet = preferences.IsPreferenceSet
		page.CookiesPolicy = model.CookiesPolicy{
			Essential: preferences.Policy.Essential,
			Usage:     preferences.Policy.Usage,
		}

		var b bytes.Buffer
		if err := rend.BuildPage(&b, page, datasetIndexTemplate); err != nil {
			log.Error(ctx, "error rendering dataset index page", err, log.Data{"template": datasetIndexTemplate})
			setStatusCode(req, w, err)
			return
		}

		if _, err := b.WriteTo(w); err != nil {
			log.Error(ctx, "error writing rendered dataset index page", err)
		}
	}
}

// DatasetIndexData returns the mapped dataset index page model as JSON, the
// data equivalent of the rendered page
func DatasetIndexData(cli DatasetIndexClient) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		index, err := cli.GetIndex(ctx, getUserAuthToken(ctx, req), getServiceAuthToken(req))
		if err != nil {
			log.Error(ctx, "error getting dataset index", err)
			setStatusCode(req, w, err)
			return
		}

		page := mapper.CreateDatasetIndexPage(index)

		b, err := json.Marshal(page)
		if err != nil {
			log.Error(ctx, "error marshalling dataset index page data", err)
			setStatusCode(req, w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(b); err != nil {
			log.Error(ctx, "error writing dataset index page data", err)
		}
	}
}

func getUserAuthToken(ctx context.Context, req *http.Request) string {
	token, err := headers.GetUserAuthToken(req)
	if err == nil {
		return token
	}

	cookie, err := req.Cookie(dprequest.FlorenceCookieKey)
	if err != nil && err == http.ErrNoCookie {
		return ""
	} else if err != nil {
		log.Error(ctx, "error getting access token cookie from request", err)
		return ""
	}
	return cookie.Value
}

func getServiceAuthToken(req *http.Request) string {
	token, _ := headers.GetServiceAuthToken(req)
	return token
}
