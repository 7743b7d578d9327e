package constants

// Database table names.
const (
	TableSites               = "sites"
	TableRacks               = "racks"
	TableRackReservations    = "rack_reservations"
	TableDevices             = "devices"
	TablePorts               = "ports"
	TableCables              = "cables"
	TableCircuits            = "circuits"
	TableCircuitTerminations = "circuit_terminations"
)
