// Package discovery centralizes in-network service address conventions.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceAdmin is the admin web server identity.
	ServiceAdmin = "admin"
	// ServiceUsers is the users gRPC service identity.
	ServiceUsers = "users"
	// ServiceRedis is the Redis broker used for live refresh fan-out.
	ServiceRedis = "redis"
)

var grpcPorts = map[string]int{
	ServiceUsers: 8093,
}

var httpPorts = map[string]int{
	ServiceAdmin: 8082,
}

var redisPorts = map[string]int{
	ServiceRedis: 6379,
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	return defaultAddr(strings.TrimSpace(service), grpcPorts)
}

// DefaultHTTPAddr returns the canonical in-network HTTP address for a service.
func DefaultHTTPAddr(service string) string {
	return defaultAddr(strings.TrimSpace(service), httpPorts)
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}

// DefaultRedisURL returns the in-network Redis URL, database 0.
func DefaultRedisURL() string {
	return "redis://" + defaultAddr(ServiceRedis, redisPorts) + "/0"
}

func defaultAddr(service string, ports map[string]int) string {
	port, ok := ports[service]
	if !ok || port <= 0 {
		return ""
	}
	return service + ":" + strconv.Itoa(port)
}
