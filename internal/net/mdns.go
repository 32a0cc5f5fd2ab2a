package net

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_shapeboard._tcp"

// Advertise announces the live view on port to the local network.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	info := []string{"ShapeBoard live view"}
	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, info)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	log.Printf("[MDNS] Advertising %s on port %d", serviceType, port)
	return server, nil
}

// Browse calls found with host:port for every live view answering within
// timeout.
func Browse(timeout time.Duration, found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port))
		}
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return fmt.Errorf("browsing for %s: %w", serviceType, err)
	}
	return nil
}

// Discover returns the first live view found within timeout.
func Discover(timeout time.Duration) (string, error) {
	var first string
	err := Browse(timeout, func(addr string) {
		if first == "" {
			first = addr
		}
	})
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", fmt.Errorf("no %s service found within %s", serviceType, timeout)
	}
	return first, nil
}
