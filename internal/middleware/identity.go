package middleware

import "github.com/gin-gonic/gin"

// PassengerIDKey is the gin context key holding the caller's passenger ID
const PassengerIDKey = "passenger_id"

// passengerIDHeader carries the app-installation identifier. There is no
// authentication protocol; the header only scopes wallet, booking and ticket
// state to one device.
const passengerIDHeader = "X-Passenger-ID"

// defaultPassengerID is used when the app omits the header
const defaultPassengerID = "guest"

// Identity resolves the passenger ID for the request and stores it in the
// gin context.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		passengerID := c.GetHeader(passengerIDHeader)
		if passengerID == "" {
			passengerID = defaultPassengerID
		}
		c.Set(PassengerIDKey, passengerID)
		c.Next()
	}
}

// PassengerID returns the passenger ID resolved by the Identity middleware.
func PassengerID(c *gin.Context) string {
	if id, exists := c.Get(PassengerIDKey); exists {
		if s, ok := id.(string); ok && s != "" {
			return s
		}
	}
	return defaultPassengerID
}
