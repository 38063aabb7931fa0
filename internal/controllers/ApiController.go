package controllers

import (
	"agentcrm/internal/models"
	"agentcrm/internal/providers"
	"agentcrm/internal/services"
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const (
	msgNameEmailRequired = "Name and email are required"
	msgInvalidBody       = "Invalid request body"
	msgSaveFailed        = "Failed to save client"
	msgInternal          = "Internal Server Error"
)

const (
	cacheKeySummary  = "summary"
	cacheKeyClients  = "clients"
	cacheKeyDeals    = "deals"
	cacheKeyPipeline = "pipeline"
)

type errorResponse struct {
	Error string `json:"error"`
}

type createClientResponse struct {
	Client models.Contact `json:"client"`
}

type ApiController struct {
	logger  providers.Logger
	service services.CrmServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.CrmServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func (ac *ApiController) respond(w http.ResponseWriter, status int, value any) {
	gson, err := json.Marshal(value)
	if err != nil {
		ac.logger.Errorf(providers.TypeApp, "Failed to encode response: %s", err)
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, gson)
}

func (ac *ApiController) respondError(w http.ResponseWriter, status int, message string) {
	ac.respond(w, status, errorResponse{Error: message})
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() any) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, data)
		return
	}

	// Read before compute: a purge in between means the result may predate
	// a mutation and must not be cached.
	generation := ac.cache.Generation()
	gson, err := json.Marshal(compute())
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Failed to encode %s: %s", cacheKey, err)
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}

	if !ac.cache.SetIfUnchanged(generation, cacheKey, gson) {
		ac.logger.Debugf(providers.TypeGet, "Skipped caching %s: store changed during read", cacheKey)
	}
	writeJSON(w, http.StatusOK, gson)
}

func (ac *ApiController) GetSummary(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeySummary, func() any {
		return ac.service.GetSummary()
	})
}

func (ac *ApiController) GetClients(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyClients, func() any {
		return ac.service.ListContacts()
	})
}

func (ac *ApiController) GetDeals(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyDeals, func() any {
		return ac.service.ListDeals()
	})
}

func (ac *ApiController) GetPipeline(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyPipeline, func() any {
		return ac.service.GetPipeline()
	})
}

func (ac *ApiController) CreateClient(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		ac.respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	contact, err := ac.service.AddContact(payload)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			ac.respondError(w, http.StatusBadRequest, msgNameEmailRequired)
			return
		}
		// The contact is already in memory even though the write failed.
		ac.cache.Purge()
		ac.logger.Errorf(providers.TypePost, "Failed to save client: %s", err)
		ac.respondError(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	ac.cache.Purge()
	ac.metrics.SetRecordsTotal("contacts", ac.service.ContactCount())
	ac.logger.Infof(providers.TypePost, "Created client %s", contact.ID)
	ac.respond(w, http.StatusCreated, createClientResponse{Client: contact})
}
