package handlers

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// VersionHandler serves the operational /version endpoint.
type VersionHandler struct {
	Service string
	Version string
}

func NewVersionHandler(service, version string) *VersionHandler {
	return &VersionHandler{Service: service, Version: version}
}

// Get handles GET /version
func (h *VersionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": h.Service,
		"version": h.Version,
		"hostIp":  hostIP(),
	})
}

// hostIP resolves the outbound interface address without sending traffic.
func hostIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "unknown"
	}
	defer func() { _ = conn.Close() }()
	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "unknown"
}
