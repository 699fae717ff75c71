package server

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"go.uber.org/zap"
)

// HealthServiceName is the service reported by the health check besides the
// server as a whole ("").
const HealthServiceName = "brewerystats.Breweries"

type pinger interface {
	Ping(ctx context.Context) error
}

// DatastoreChecker reports the server as serving while the datastore answers
// pings.
type DatastoreChecker struct {
	datastore pinger
	logger    *zap.Logger
}

func NewDatastoreChecker(datastore pinger, logger *zap.Logger) *DatastoreChecker {
	return &DatastoreChecker{datastore: datastore, logger: logger}
}

func (c *DatastoreChecker) Check(ctx context.Context, request *grpchealth.CheckRequest) (*grpchealth.CheckResponse, error) {
	if request.Service != "" && request.Service != HealthServiceName {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("unknown service %q", request.Service))
	}

	if err := c.datastore.Ping(ctx); err != nil {
		c.logger.Warn("datastore health check failed", zap.Error(err))

		return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
	}

	return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
}
