// Package models defines the core domain models for the ResIQ owner portal.
//
// # Source records
//
// The following models mirror rows owned by the hosted database and are
// read-only from this service's perspective:
//   - Booking: one reservation on an owner's property
//   - Payment: one money movement tied to a booking
//
// # Settlement models
//
//   - SettlementRecord: derived per (owner, month), never persisted
//   - SettlementStatusEntry: the persisted completion flag per (owner, month)
//
// # Owner payouts
//
//   - RevenueSummary: lifetime revenue split between owner and Hostizzy
//   - PayoutRequest: an owner's request to withdraw part of their balance
//
// # Design Principles
//
// 1. **Money is decimal**: every currency amount is a decimal.Decimal
// 2. **Parse at the boundary**: storage backends coerce malformed amounts to
// zero and leave unparseable dates as the zero time
// 3. **Avoid circular references**: relationships are ID strings
package models
