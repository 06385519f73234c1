package pac

import (
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/dop251/goja"
)

var weekdays = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// bindHelpers installs the standard PAC functions into the runtime.
func (s *Script) bindHelpers() error {
	helpers := map[string]any{
		"isPlainHostName":     isPlainHostName,
		"dnsDomainIs":         dnsDomainIs,
		"localHostOrDomainIs": localHostOrDomainIs,
		"dnsDomainLevels":     dnsDomainLevels,
		"shExpMatch":          shExpMatch,
		"isResolvable":        s.isResolvable,
		"isInNet":             s.isInNet,
		"dnsResolve":          s.dnsResolve,
		"myIpAddress":         myIPAddress,
		"weekdayRange":        s.weekdayRange,
		"alert":               s.alert,
	}

	for name, fn := range helpers {
		if err := s.vm.Set(name, fn); err != nil {
			return fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}
	return nil
}

func isPlainHostName(host string) bool {
	return !strings.Contains(host, ".")
}

func dnsDomainIs(host, domain string) bool {
	return strings.HasSuffix(strings.ToLower(host), strings.ToLower(domain))
}

func localHostOrDomainIs(host, hostdom string) bool {
	host, hostdom = strings.ToLower(host), strings.ToLower(hostdom)
	if host == hostdom {
		return true
	}
	return !strings.Contains(host, ".") && strings.HasPrefix(hostdom, host+".")
}

func dnsDomainLevels(host string) int {
	return strings.Count(host, ".")
}

// shExpMatch matches str against a shell expression where * and ? are the only wildcards.
func shExpMatch(str, shexp string) bool {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range shexp {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return false
	}
	return re.MatchString(str)
}

// lookup returns the first IPv4 address of host, or the first address of any family.
func (s *Script) lookup(host string) (net.IP, bool) {
	if ip := net.ParseIP(host); ip != nil {
		return ip, true
	}

	addrs, err := s.hosts.Resolve(s.ctx, host)
	if err != nil || len(addrs) == 0 {
		return nil, false
	}

	var first net.IP
	for _, addr := range addrs {
		ip := net.ParseIP(addr)
		if ip == nil {
			continue
		}
		if ip.To4() != nil {
			return ip, true
		}
		if first == nil {
			first = ip
		}
	}
	return first, first != nil
}

func (s *Script) isResolvable(host string) bool {
	_, ok := s.lookup(host)
	return ok
}

func (s *Script) dnsResolve(host string) goja.Value {
	ip, ok := s.lookup(host)
	if !ok {
		return goja.Null()
	}
	return s.vm.ToValue(ip.String())
}

func (s *Script) isInNet(host, pattern, mask string) bool {
	ip, ok := s.lookup(host)
	if !ok {
		return false
	}

	ip4, pat4, mask4 := ip.To4(), net.ParseIP(pattern).To4(), net.ParseIP(mask).To4()
	if ip4 == nil || pat4 == nil || mask4 == nil {
		return false
	}

	m := net.IPMask(mask4)
	return ip4.Mask(m).Equal(pat4.Mask(m))
}

// myIPAddress returns the first non-loopback IPv4 address of this host.
func myIPAddress() string {
	addrs, err := net.InterfaceAddrs()
	if err == nil {
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok || ipNet.IP.IsLoopback() {
				continue
			}
			if ip4 := ipNet.IP.To4(); ip4 != nil {
				return ip4.String()
			}
		}
	}
	return "127.0.0.1"
}

// weekdayRange implements weekdayRange(wd1 [, wd2] [, "GMT"]).
func (s *Script) weekdayRange(call goja.FunctionCall) goja.Value {
	args := make([]string, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		args = append(args, strings.ToUpper(arg.String()))
	}

	now := s.now()
	if len(args) > 0 && args[len(args)-1] == "GMT" {
		now = now.UTC()
		args = args[:len(args)-1]
	}

	if len(args) == 0 || len(args) > 2 {
		return s.vm.ToValue(false)
	}

	from := weekdayIndex(args[0])
	to := from
	if len(args) == 2 {
		to = weekdayIndex(args[1])
	}
	if from < 0 || to < 0 {
		return s.vm.ToValue(false)
	}

	today := int(now.Weekday())
	if from <= to {
		return s.vm.ToValue(today >= from && today <= to)
	}
	return s.vm.ToValue(today >= from || today <= to)
}

func weekdayIndex(name string) int {
	for i, d := range weekdays {
		if d == name {
			return i
		}
	}
	return -1
}

func (s *Script) alert(msg string) {
	s.logger.Debug("PAC alert: " + msg)
}
