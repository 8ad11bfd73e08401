package health

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"go.uber.org/zap"
)

// ServiceName is reported to health and reflection clients for the REST API.
const ServiceName = "pinarr.v1.API"

type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker answers grpc health checks by pinging the database. An empty
// service name asks about the whole server.
type Checker struct {
	db       Pinger
	services map[string]struct{}
	logger   *zap.Logger
}

func NewChecker(db Pinger, logger *zap.Logger, services ...string) *Checker {
	known := make(map[string]struct{}, len(services))
	for _, service := range services {
		known[service] = struct{}{}
	}

	return &Checker{db: db, services: known, logger: logger}
}

func (c *Checker) Check(ctx context.Context, request *grpchealth.CheckRequest) (*grpchealth.CheckResponse, error) {
	if request.Service != "" {
		if _, ok := c.services[request.Service]; !ok {
			return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("unknown service %s", request.Service))
		}
	}

	if err := c.db.Ping(ctx); err != nil {
		c.logger.Warn("database ping failed", zap.Error(err))

		return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
	}

	return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
}
