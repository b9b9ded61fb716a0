package api

import (
	"pesisir-api/internal/domain/model"
	"pesisir-api/internal/domain/model/external"
	"pesisir-api/pkg/http"
)

const forecastPath = "/publik/prakiraan-cuaca"

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient *http.Client
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, clientOptions http.ClientOptions) ForecastGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &forecastGatewayImpl{
		httpClient: httpClient,
	}
}

// GetForecast fetches the hourly forecast for a region code
func (g *forecastGatewayImpl) GetForecast(regionCode string) (*external.ForecastResponse, error) {
	successResp, _, status, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(map[string]string{"adm4": regionCode}).
		WithSuccessResp(&external.ForecastResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}

	// A 2xx answer that still errored means the body could not be decoded.
	if status >= 200 && status < 300 {
		return nil, &model.UpstreamError{
			Kind:       model.FailureUpstreamData,
			RegionCode: regionCode,
			Err:        err,
		}
	}

	return nil, &model.UpstreamError{
		Kind:       model.FailureTransport,
		RegionCode: regionCode,
		Err:        err,
	}
}
