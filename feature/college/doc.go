// Package college implements the class material feature.
//
// Classes (course units) reference synopsis sections as their study
// material, in a staff-curated order. The ordering itself is driven by
// the `core/ordering` reconciler over the `class_sections` table; section
// content stays with the synopses feature.
//
// # HTTP Endpoints
//
//   - GET    /college/classes/:id/sections : Ordered sections of a class.
//   - PUT    /college/classes/:id/sections : Replace the whole ordering.
//   - POST   /college/classes/:id/sections : Append one section.
//   - DELETE /college/classes/:id/sections/:child : Detach one section.
package college
