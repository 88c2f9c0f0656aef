package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Database settings are optional: when
// DB_HOST is unset the service runs on the in-memory store, which is
// convenient for local development and demos.
type Config struct {
    Env  string // application environment (e.g. "dev", "prod")
    Port string // HTTP port to listen on

    DBUser string // database username (optional; empty disables MySQL)
    DBPass string // database password (optional)
    DBHost string // database host address
    DBPort string // database port number
    DBName string // database name

    JWTSecret         string // secret used to sign admin tokens
    AdminPassHash     string // bcrypt hash of the shared admin passphrase
    AdminTokenTTLMin  int    // admin token time-to-live in minutes

    Booking BookingConfig // bookable window and slot step
    Policy  PolicyConfig  // duration rule, repeat scope, confirm re-check
}

// BookingConfig describes the venue's bookable window.  Open and Close
// are minute offsets from midnight; the window is [Open, Close).
type BookingConfig struct {
    OpenMinute  int
    CloseMinute int
    SlotMinutes int
}

// PolicyConfig selects the duration-rule variant and the scope of the
// repeat-requester check, and controls whether approval re-validates
// overlap against the live confirmed set.
type PolicyConfig struct {
    DurationRule     string // "cap" or "exact"
    RepeatScope      string // "day" or "space"
    RecheckOnConfirm bool
}

// Load reads configuration values from environment variables and
// returns a Config.  JWT_SECRET and the admin passphrase are required;
// a missing value causes the program to exit with a fatal log message.
// ADMIN_PASSPHRASE_HASH takes precedence over ADMIN_PASSPHRASE so
// deployments can avoid putting the cleartext passphrase in the
// environment.
func Load() Config {
    return Config{
        Env:  getenv("APP_ENV", "dev"),
        Port: getenv("APP_PORT", "8080"),

        DBUser: os.Getenv("DB_USER"),
        DBPass: os.Getenv("DB_PASS"),
        DBHost: os.Getenv("DB_HOST"),
        DBPort: getenv("DB_PORT", "3306"),
        DBName: os.Getenv("DB_NAME"),

        JWTSecret:        must("JWT_SECRET"),
        AdminPassHash:    os.Getenv("ADMIN_PASSPHRASE_HASH"),
        AdminTokenTTLMin: envInt("ADMIN_TOKEN_TTL_MIN", 60),

        Booking: BookingConfig{
            OpenMinute:  parseClock("BOOKING_OPEN", "09:00"),
            CloseMinute: parseClock("BOOKING_CLOSE", "22:00"),
            SlotMinutes: envInt("BOOKING_SLOT_MIN", 30),
        },
        Policy: PolicyConfig{
            DurationRule:     getenv("POLICY_DURATION_RULE", "cap"),
            RepeatScope:      getenv("POLICY_REPEAT_SCOPE", "day"),
            RecheckOnConfirm: envBool("POLICY_RECHECK_ON_CONFIRM", true),
        },
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// parseClock reads an HH:MM environment variable and converts it to a
// minute offset from midnight, falling back to the default on any
// malformed value.
func parseClock(key, def string) int {
    s := getenv(key, def)
    if len(s) != 5 || s[2] != ':' {
        s = def
    }
    h, err1 := strconv.Atoi(s[:2])
    m, err2 := strconv.Atoi(s[3:])
    if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
        log.Fatalf("invalid clock value for %s: %q", key, s)
    }
    return h*60 + m
}

// Optional typed variables reuse the envInt/envBool helpers defined in
// ratelimit.go.
