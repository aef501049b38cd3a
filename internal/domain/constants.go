package domain

// Default capacity values, used when settings leave a limit unset
const (
	DefaultMaxPetsAtHome         = 10
	DefaultMaxHouseVisitsPerDay  = 6
	DefaultMaxOvernightsPerNight = 1
	DefaultBufferDays            = 1
	DefaultAdminPIN              = "1234"
)

// UnboundedSpots is reported as spotsLeft for tracks without a capacity limit
const UnboundedSpots = 99

// AlmostFullRatio marks an at-home day as filling up when spotsLeft drops to this share of the limit
const AlmostFullRatio = 0.3

// Business validation constants
const (
	MinBufferDays      = 0
	MaxBufferDays      = 14
	MaxCapacity        = 100
	MaxDatesPerBooking = 62
	MaxNotesLength     = 1000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// User-facing rejection reasons
const (
	ReasonAtMaxPetCapacity = "At max pet capacity"
	ReasonBufferDay        = "Buffer day (transition time)"
	ReasonOvernightBooked  = "Overnight stay already booked"
	ReasonMaxHouseVisits   = "Max %d house visits/day reached"
	ReasonNotEnoughSpots   = "Not enough spots on %s. Only %d available."
	ReasonDateBlocked      = "Date is blocked"
	ReasonDateInPast       = "Date is in the past"
)

// ActiveStatuses список статусов, удерживающих вместимость
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses список всех допустимых статусов
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusDeclined,
}
