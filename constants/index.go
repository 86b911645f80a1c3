package constants

// Roles
const (
	ROLE_ADMIN  = "ADMIN"
	ROLE_CHEF   = "CHEF"
	ROLE_WAITER = "WAITER"
)

var ROLE = []string{ROLE_ADMIN, ROLE_CHEF, ROLE_WAITER}

// Legacy role names still sent by old clients.
var ROLE_ALIASES = map[string]string{
	"admin":     ROLE_ADMIN,
	"chef":      ROLE_CHEF,
	"oshpaz":    ROLE_CHEF,
	"waiter":    ROLE_WAITER,
	"ofitsiant": ROLE_WAITER,
}

// Order types
const (
	ORDER_TYPE_TABLE    = "table"
	ORDER_TYPE_DELIVERY = "delivery"
)

var ORDER_TYPE = []string{ORDER_TYPE_TABLE, ORDER_TYPE_DELIVERY}

// Order statuses, in lifecycle order.
const (
	ORDER_PENDING   = "pending"
	ORDER_PREPARING = "preparing"
	ORDER_READY     = "ready"
	ORDER_COMPLETED = "completed"
	ORDER_PAID      = "paid"
)

var ORDER_STATUS = []string{ORDER_PENDING, ORDER_PREPARING, ORDER_READY, ORDER_COMPLETED, ORDER_PAID}

// Alternate status words used by the old chef/waiter screens.
var ORDER_STATUS_ALIASES = map[string]string{
	"tayinlanmoqda": ORDER_PREPARING,
	"yetkazildi":    ORDER_COMPLETED,
	"tolandi":       ORDER_PAID,
	"to'landi":      ORDER_PAID,
}

// Seating unit statuses
const (
	SEAT_AVAILABLE = "available"
	SEAT_OCCUPIED  = "occupied"
	SEAT_RESERVED  = "reserved"
)

var SEAT_STATUS = []string{SEAT_AVAILABLE, SEAT_OCCUPIED, SEAT_RESERVED}

// Seating type names that store their number as a room number.
var ROOM_TYPES = []string{"xona", "room"}

// Realtime event types
const (
	EVENT_ORDER_CREATED   = "order.created"
	EVENT_ORDER_STATUS    = "order.status"
	EVENT_ORDER_DELETED   = "order.deleted"
	EVENT_SEATING_UPDATED = "seating.updated"
	EVENT_SEATING_RESET   = "seating.reset"
)

const ARCHIVE_REASON_UNPAID = "unpaid > %d days"
