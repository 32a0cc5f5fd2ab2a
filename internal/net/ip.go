package net

import (
	"log"
	"net"
	"strconv"
)

// ShareAddress returns the host:port a viewer on the LAN should dial to
// reach a live view served on port.
func ShareAddress(port int) string {
	return net.JoinHostPort(lanIP().String(), strconv.Itoa(port))
}

// lanIP asks the routing table which local address faces the network. No
// packet is sent; dialing UDP only picks a route. Without a route it falls
// back to scanning the interfaces.
func lanIP() net.IP {
	if conn, err := net.Dial("udp", "8.8.8.8:80"); err == nil {
		defer conn.Close()
		return conn.LocalAddr().(*net.UDPAddr).IP
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Printf("[NET] Listing interface addresses: %v", err)
		return net.IPv4(127, 0, 0, 1)
	}
	if ip, ok := pickLANAddr(addrs); ok {
		return ip
	}
	log.Println("[NET] No LAN address found, share link only works locally")
	return net.IPv4(127, 0, 0, 1)
}

// pickLANAddr prefers a private IPv4 address (10/8, 172.16/12, 192.168/16)
// over any other non-loopback IPv4 address.
func pickLANAddr(addrs []net.Addr) (net.IP, bool) {
	var public net.IP
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() || ipnet.IP.IsLinkLocalUnicast() {
			continue
		}
		ip := ipnet.IP.To4()
		if ip == nil {
			continue
		}
		if ip.IsPrivate() {
			return ip, true
		}
		if public == nil {
			public = ip
		}
	}
	return public, public != nil
}
