package addrset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/henderiw/idxrange/pkg/interval"
	"go4.org/netipx"
)

// AddrSet is an immutable set of IPv4 addresses.
type AddrSet struct {
	set *interval.Set
}

// Parse parses an IPv4 range "a.b.c.d-e.f.g.h", a prefix "a.b.c.d/n" or a
// single address.
func Parse(s string) (netipx.IPRange, error) {
	var ipRange netipx.IPRange
	switch {
	case strings.Contains(s, "-"):
		r, err := netipx.ParseIPRange(s)
		if err != nil {
			return ipRange, err
		}
		ipRange = r
	case strings.Contains(s, "/"):
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return ipRange, err
		}
		ipRange = netipx.RangeOfPrefix(p)
	default:
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return ipRange, err
		}
		ipRange = netipx.IPRangeFrom(addr, addr)
	}
	if !ipRange.From().Is4() || !ipRange.To().Is4() {
		return netipx.IPRange{}, fmt.Errorf("ip range %s is not ipv4", s)
	}
	return ipRange, nil
}

// Build returns the set of all addresses covered by specs, see Parse for the
// accepted forms. Invalid specs are skipped and reported as a joined error.
func Build(specs []string) (*AddrSet, error) {
	var (
		bldr interval.Builder
		errs error
	)
	for _, s := range specs {
		ipRange, err := Parse(s)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("ip range %q is invalid: %w", s, err))
			continue
		}
		bldr.Add(addrToID(ipRange.From()), addrToID(ipRange.To()))
	}
	set, err := bldr.Set()
	return &AddrSet{set: set}, errors.Join(errs, err)
}

// Contains reports whether addr is in r. IPv4-mapped IPv6 addresses are
// matched by their IPv4 form, other IPv6 addresses never match.
func (r *AddrSet) Contains(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.Is4() {
		return false
	}
	return r.set.Contains(addrToID(addr))
}

// ContainsString parses addr and reports whether it is in r.
func (r *AddrSet) ContainsString(addr string) (bool, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return false, fmt.Errorf("ip address %s is invalid", addr)
	}
	return r.Contains(ip), nil
}

// Ranges returns the minimal sorted list of address ranges covering r.
func (r *AddrSet) Ranges() []netipx.IPRange {
	out := make([]netipx.IPRange, 0, r.set.Len())
	for _, rng := range r.set.Ranges() {
		out = append(out, netipx.IPRangeFrom(idToAddr(rng.From), idToAddr(rng.To)))
	}
	return out
}

// Size returns the number of addresses in r.
func (r *AddrSet) Size() uint64 {
	return r.set.Size()
}

func (r *AddrSet) String() string {
	ranges := r.Ranges()
	parts := make([]string, 0, len(ranges))
	for _, rng := range ranges {
		parts = append(parts, rng.String())
	}
	return strings.Join(parts, ",")
}

func addrToID(addr netip.Addr) uint64 {
	a4 := addr.As4()
	return uint64(binary.BigEndian.Uint32(a4[:]))
}

func idToAddr(id uint64) netip.Addr {
	var a4 [4]byte
	binary.BigEndian.PutUint32(a4[:], uint32(id))
	return netip.AddrFrom4(a4)
}
