package services

// Services defined in this package:
// - AuthService: registration, login and token issuance
// - ProfileService: student profile reads and rule-checked updates
// - CompanyService: company records
// - JobService: job postings, applications and status changes
// - NotificationService: per-user notifications
// - ReportService: aggregate placement reporting and CSV export
