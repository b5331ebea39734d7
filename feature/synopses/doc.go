// Package synopses implements the study material feature.
//
// Synopses are organized as a taxonomy: topics own an ordered list of
// sections, and sections may in turn contain other sections as ordered
// subsections. The rendered markdown of each section lives in object
// storage (S3/MinIO); the database only carries the structure.
//
// # Ordering Core
//
// Both relation kinds are driven by the `core/ordering` reconciler. Every
// write validates the proposed ordering up front and applies it inside a
// single transaction, so a parent's listing always has contiguous
// positions 0..N-1 with no child attached twice. The section→subsection
// reconciler additionally rejects a section containing itself.
//
// # Components
//
//   - Service: Existence checks, listing cache and delegation to the
//     ordering reconcilers and the document store.
//   - Handler: Exposes HTTP endpoints for listings, reorders and section
//     documents.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET    /synopses/topics/:id/sections : Ordered sections of a topic.
//   - PUT    /synopses/topics/:id/sections : Replace the whole ordering.
//   - POST   /synopses/topics/:id/sections : Append one section.
//   - DELETE /synopses/topics/:id/sections/:child : Detach one section.
//   - GET    /synopses/sections/:id/children : Ordered subsections.
//   - PUT    /synopses/sections/:id/children : Replace the whole ordering.
//   - POST   /synopses/sections/:id/children : Append one subsection.
//   - DELETE /synopses/sections/:id/children/:child : Detach one subsection.
//   - GET    /synopses/sections/:id/document : Fetch the markdown document.
//   - PUT    /synopses/sections/:id/document : Store the markdown document.
//   - DELETE /synopses/sections/:id/document : Remove the markdown document.
package synopses
