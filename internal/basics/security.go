package basics

import (
	"io"

	"github.com/aanand-mishra/go-basics/internal/utils/console"
)

// Security configuration. These are constants, so no code path can raise
// the attempt limit or rename the admin role at runtime.
const (
	MaxLoginAttempts uint32 = 3
	AdminPrivileges         = "ADMIN"
)

// IsLocked reports whether an account with this many failed logins must
// be locked.
func IsLocked(failedAttempts uint32) bool {
	return failedAttempts >= MaxLoginAttempts
}

// Security is the "security monitoring system" practice: the same
// mutable / immutable / shadowing rules as Variables, told as a story.
func Security(w io.Writer) error {
	p := console.New(w)
	p.Heading("Security Monitoring System")

	// ── Challenge 1: authentication tracking ────────────────────────────
	p.Println()
	p.Println("Challenge 1: User Authentication Tracking")

	username := "alice" // never reassigned below
	var failedAttempts uint32
	isLocked := false

	p.Printf("User: %s\n", username)
	p.Printf("Failed attempts: %d\n", failedAttempts)
	p.Printf("Account locked: %t\n", isLocked)

	// Three failed logins in a row.
	for range 3 {
		failedAttempts++
	}
	isLocked = IsLocked(failedAttempts)

	p.Println("After failed logins:")
	p.Printf("Failed attempts: %d\n", failedAttempts)
	p.Printf("Account locked: %t\n", isLocked)

	// ── Challenge 2: permission escalation ──────────────────────────────
	p.Println()
	p.Println("Challenge 2: Permission Escalation Detection")

	userRole := "USER"
	p.Printf("Initial role: %s\n", userRole)
	{
		userRole := "ATTEMPTING_ESCALATION"
		threatLevel := "HIGH" // only exists inside this block
		p.Printf("Security alert: %s\n", userRole)
		p.Printf("Threat level: %s\n", threatLevel)
	}
	p.Printf("Role after security check: %s\n", userRole)

	// ── Challenge 3: password strength levels ───────────────────────────
	p.Println()
	p.Println("Challenge 3: Password Security Levels")

	passwordStrength := 2
	p.Printf("Initial password strength (1-5): %d\n", passwordStrength)
	passwordStrength = 4
	p.Printf("After adding special characters: %d\n", passwordStrength)
	{
		passwordStrength := "STRONG"
		p.Printf("Security rating: %s\n", passwordStrength)
	}

	// ── Challenge 4: firewall rules ─────────────────────────────────────
	p.Println()
	p.Println("Challenge 4: Firewall Rule Management")

	blockedIPs := 0
	p.Printf("Currently blocked IPs: %d\n", blockedIPs)
	blockedIPs += 5
	blockedIPs += 12
	p.Printf("Blocked IPs after attack wave: %d\n", blockedIPs)
	{
		// blockedIPs = "MANY" would not compile; a new variable can be a string.
		blockedIPs := "Critical Level"
		p.Printf("Alert status: %s\n", blockedIPs)
	}

	// ── Challenge 5: nested audit log scopes ────────────────────────────
	p.Println()
	p.Println("Challenge 5: Security Audit Log")

	logEntry := "LOGIN SUCCESS"
	p.Printf("Log: %s\n", logEntry)
	{
		logEntry := "SUSPICIOUS ACTIVITY DETECTED"
		alertCode := 4001
		p.Printf("Security log: %s (Code: %d)\n", logEntry, alertCode)
		{
			logEntry := "INITIATING LOCKDOWN"
			alertCode := 9999
			p.Printf("CRITICAL: %s (Code: %d)\n", logEntry, alertCode)
		}
		p.Printf("After inner scope: %s (Code: %d)\n", logEntry, alertCode)
	}
	p.Printf("Final log state: %s\n", logEntry)

	// ── Challenge 6: constants ──────────────────────────────────────────
	p.Println()
	p.Println("Challenge 6: Constants in Security")

	p.Printf("System configured for max %d login attempts\n", MaxLoginAttempts)
	p.Printf("Admin privileges: %s\n", AdminPrivileges)

	warningThreshold := MaxLoginAttempts - 1
	p.Printf("Warning threshold: %d\n", warningThreshold)

	p.Println()
	p.Println("Security monitoring active")

	return p.Err()
}
