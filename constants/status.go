package constants

// Report status
const ReportStatusPending = "pending"

// Utility rate type
const UtilityRateFixed = "fixed"
