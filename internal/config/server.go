package config

//
// server.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
)

// ListenConf configure one listener.
type ListenConf struct {
	Address string
	// WebRoot is prefix of all routes; empty or starting with "/" and without
	// trailing slash.
	WebRoot      string
	TLSKey       string
	TLSCert      string
	CookieSecure bool
}

func (c *ListenConf) Validate() error {
	switch {
	case c.Address == "":
		return aerr.ErrValidation.WithUserMsg("listen address can't be empty")
	case (c.TLSKey == "") != (c.TLSCert == ""):
		return aerr.ErrValidation.WithUserMsg("tls key and cert must be set together")
	case c.WebRoot != "" && (!strings.HasPrefix(c.WebRoot, "/") || strings.HasSuffix(c.WebRoot, "/")):
		return aerr.ErrValidation.WithUserMsg("web root %q must start and can't end with '/'", c.WebRoot)
	}

	return nil
}

func (c *ListenConf) TLSEnabled() bool {
	return c.TLSKey != ""
}

// UseSecureCookie is true when session cookie should be sent only over https;
// also when tls is terminated by proxy.
func (c *ListenConf) UseSecureCookie() bool {
	return c.TLSEnabled() || c.CookieSecure
}

//-------------------------------------------------------------

const DefaultSessionMaxLifetime = 7 * 24 * time.Hour

// ServerConf configure main and management servers.
type ServerConf struct {
	MainServer ListenConf
	MgmtServer ListenConf

	DebugFlags     DebugFlags
	EnableMetrics  bool
	MgmtAccessList string

	SetSecurityHeaders bool
	// SessionMaxLifetime is lifetime of session cookie; player bound to session
	// is dropped earlier when idle.
	SessionMaxLifetime time.Duration

	mgmtAccessList *AccessList
}

func (c *ServerConf) Validate() error {
	if err := c.MainServer.Validate(); err != nil {
		return fmt.Errorf("invalid main server configuration: %w", err)
	}

	if c.MgmtServer.Address != "" {
		if err := c.MgmtServer.Validate(); err != nil {
			return fmt.Errorf("invalid management server configuration: %w", err)
		}
	}

	if c.MgmtAccessList != "" {
		al, err := NewAccessList(c.MgmtAccessList)
		if err != nil {
			return fmt.Errorf("invalid management access list: %w", err)
		}

		c.mgmtAccessList = al

		log.Logger.Debug().Object("access_list", al).Msg("management access list configured")
	}

	switch {
	case c.SessionMaxLifetime == 0:
		c.SessionMaxLifetime = DefaultSessionMaxLifetime
	case c.SessionMaxLifetime < time.Minute:
		return aerr.ErrValidation.WithUserMsg("session lifetime must be at least one minute")
	}

	return nil
}

// SeparateMgmtEnabled is true when management endpoints have own listener.
func (c *ServerConf) SeparateMgmtEnabled() bool {
	return c.MgmtServer.Address != "" && c.MgmtServer.Address != c.MainServer.Address
}

func (c *ServerConf) MgmtEnabledOnMainServer() bool {
	return c.MgmtServer.Address != "" && c.MgmtServer.Address == c.MainServer.Address
}

// AuthMgmtRequest check is remote address of req allowed to access management
// endpoints. Second result is true when access is decided by configuration
// (loopback or access list); otherwise private networks are allowed.
func (c *ServerConf) AuthMgmtRequest(req *http.Request) (bool, bool) {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		host = req.RemoteAddr
	}

	if host == "localhost" {
		return true, true
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false, false
	}

	addr = addr.Unmap()

	switch {
	case addr.IsLoopback():
		return true, true
	case c.mgmtAccessList != nil:
		return c.mgmtAccessList.HasAccess(addr), true
	default:
		return addr.IsPrivate(), false
	}
}

//-------------------------------------------------------------

// AccessList is list of allowed networks; single addresses are stored as
// full-length prefixes.
type AccessList struct {
	prefixes []netip.Prefix
}

// NewAccessList parse comma separated list of addresses and networks in CIDR notation.
func NewAccessList(accesslist string) (*AccessList, error) {
	var prefixes []netip.Prefix

	for entry := range strings.SplitSeq(accesslist, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, aerr.ErrValidation.WithUserMsg("invalid network %q in access list", entry).
					WithMeta("error", err.Error())
			}

			prefixes = append(prefixes, prefix.Masked())

			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, aerr.ErrValidation.WithUserMsg("invalid address %q in access list", entry)
		}

		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return &AccessList{prefixes: prefixes}, nil
}

func (a *AccessList) HasAccess(addr netip.Addr) bool {
	return lo.ContainsBy(a.prefixes, func(p netip.Prefix) bool { return p.Contains(addr) })
}

func (a *AccessList) MarshalZerologObject(event *zerolog.Event) {
	event.Strs("allowed", lo.Map(a.prefixes, func(p netip.Prefix, _ int) string { return p.String() }))
}
