package security

import (
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"
)

// IntrusionDetectionSystem keeps a rolling record of suspicious request
// patterns per client IP. Repeated probes escalate the IP's threat level
// until requests from it are refused outright.
type IntrusionDetectionSystem struct {
	logger        *slog.Logger
	suspiciousIPs map[string]*SuspiciousActivity
	mutex         sync.RWMutex
}

type SuspiciousActivity struct {
	IP             string
	Attempts       int
	LastAttempt    time.Time
	AttackPatterns []string
	ThreatLevel    ThreatLevel
}

type ThreatLevel int

const (
	ThreatLevelLow ThreatLevel = iota
	ThreatLevelMedium
	ThreatLevelHigh
	ThreatLevelCritical
)

var (
	sqlInjectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)union\s+select`),
		regexp.MustCompile(`(?i)or\s+1\s*=\s*1`),
		regexp.MustCompile(`(?i)drop\s+table`),
		regexp.MustCompile(`(?i)delete\s+from`),
		regexp.MustCompile(`(?i)'.*or.*'.*'`),
	}

	xssPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script[^>]*>`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)on\w+\s*=`),
		regexp.MustCompile(`(?i)<iframe[^>]*>`),
	}

	pathTraversalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\.\./`),
		regexp.MustCompile(`\.\.\\`),
		regexp.MustCompile(`%2e%2e%2f`),
		regexp.MustCompile(`%252e%252e%252f`),
	}

	scannerUserAgents = []*regexp.Regexp{
		regexp.MustCompile(`(?i)sqlmap`),
		regexp.MustCompile(`(?i)nmap`),
		regexp.MustCompile(`(?i)nikto`),
		regexp.MustCompile(`(?i)burp`),
	}
)

func NewIDS(logger *slog.Logger) *IntrusionDetectionSystem {
	ids := &IntrusionDetectionSystem{
		logger:        logger.With("component", "ids"),
		suspiciousIPs: make(map[string]*SuspiciousActivity),
	}

	go ids.cleanupSuspiciousIPs()
	return ids
}

// AnalyzeRequest inspects a request and reports whether it should be
// allowed. Detected attack patterns are recorded against the client IP.
func (ids *IntrusionDetectionSystem) AnalyzeRequest(ip, userAgent, path, body string) bool {
	var patterns []string

	if matchesAny(sqlInjectionPatterns, body) {
		patterns = append(patterns, "SQL_INJECTION")
	}
	if matchesAny(xssPatterns, body) {
		patterns = append(patterns, "XSS_ATTACK")
	}
	if matchesAny(pathTraversalPatterns, path) {
		patterns = append(patterns, "PATH_TRAVERSAL")
	}
	if matchesAny(scannerUserAgents, userAgent) {
		patterns = append(patterns, "SUSPICIOUS_UA")
	}
	if ids.detectCredentialStuffing(ip, path) {
		patterns = append(patterns, "BRUTE_FORCE")
	}

	if len(patterns) > 0 {
		ids.recordSuspiciousActivity(ip, patterns)
		return false
	}

	return true
}

func matchesAny(patterns []*regexp.Regexp, input string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}

// detectCredentialStuffing flags an IP that keeps hammering the login
// endpoint after it has already been recorded as suspicious.
func (ids *IntrusionDetectionSystem) detectCredentialStuffing(ip, path string) bool {
	ids.mutex.RLock()
	activity, exists := ids.suspiciousIPs[ip]
	ids.mutex.RUnlock()

	if !exists {
		return false
	}

	return strings.Contains(path, "/login") &&
		activity.Attempts > 10 &&
		time.Since(activity.LastAttempt) < 5*time.Minute
}

func (ids *IntrusionDetectionSystem) recordSuspiciousActivity(ip string, patterns []string) {
	ids.mutex.Lock()
	defer ids.mutex.Unlock()

	activity, exists := ids.suspiciousIPs[ip]
	if !exists {
		activity = &SuspiciousActivity{
			IP:          ip,
			ThreatLevel: ThreatLevelLow,
		}
		ids.suspiciousIPs[ip] = activity
	}

	activity.Attempts++
	activity.LastAttempt = time.Now()
	activity.AttackPatterns = append(activity.AttackPatterns, patterns...)

	switch {
	case activity.Attempts > 50:
		activity.ThreatLevel = ThreatLevelCritical
	case activity.Attempts > 20:
		activity.ThreatLevel = ThreatLevelHigh
	case activity.Attempts > 10:
		activity.ThreatLevel = ThreatLevelMedium
	}

	ids.logger.Error("Security threat detected",
		"ip", activity.IP,
		"attempts", activity.Attempts,
		"threat_level", activity.ThreatLevel,
		"patterns", strings.Join(patterns, ","))
}

func (ids *IntrusionDetectionSystem) cleanupSuspiciousIPs() {
	for {
		time.Sleep(30 * time.Minute)

		ids.mutex.Lock()
		for ip, activity := range ids.suspiciousIPs {
			if time.Since(activity.LastAttempt) > time.Hour {
				delete(ids.suspiciousIPs, ip)
			}
		}
		ids.mutex.Unlock()
	}
}

func (ids *IntrusionDetectionSystem) GetThreatLevel(ip string) ThreatLevel {
	ids.mutex.RLock()
	defer ids.mutex.RUnlock()

	activity, exists := ids.suspiciousIPs[ip]
	if !exists {
		return ThreatLevelLow
	}

	return activity.ThreatLevel
}

// IsBlocked reports whether an IP has escalated far enough that its
// requests should be refused without further inspection.
func (ids *IntrusionDetectionSystem) IsBlocked(ip string) bool {
	return ids.GetThreatLevel(ip) >= ThreatLevelHigh
}
