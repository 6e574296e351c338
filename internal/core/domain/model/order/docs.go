// Package order provides the delivery/takeaway order aggregate and its classification rules.
//
// The package includes:
//   - Order: the aggregate root holding identity, display tag, platform, items, status,
//     requested delivery time and customer data
//   - Status: the lifecycle state machine Pending -> InPreparation -> Ready -> Delivered
//   - Platform and FulfillmentKind: the fixed platform enumeration and its delivery/pickup split
//   - DisplayTag: the human-facing classification key "{DEL|ASP}_{PLATFORM}_{reference}"
//   - Factory: turns a fulfillment selection plus cart lines into a new Order
//
// Key business rules:
//   - An order is created with at least one line item and starts in Pending
//   - Status only advances to its direct successor; Delivered is terminal
//   - takeaway and phone orders are pickups (ASP_), every other platform is a delivery (DEL_)
//   - The display tag is a display aid: it is not unique and is never used as a key
package order
