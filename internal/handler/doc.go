// Package handler provides HTTP request handlers for the Motion API.
//
// Each handler struct wraps the service it serves: adventures, community
// reviews, albums, the admin privilege update, the AI/places proxy and the
// health probes. Routes wires them onto a ServeMux.
//
// # Handler Pattern
//
//   - Constructor function (NewXxxHandler) accepts its service
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped by MapServiceError
//
// # Response Format
//
//   - WriteJSON: JSON body with status
//   - WriteError: {"error": ..., "details": [...]} body
//   - WriteNoContent: empty 204
//
// # Authentication
//
// No route authenticates callers. The admin route must be restricted at the
// edge.
//
// # Example Usage
//
//	routes := &handler.Routes{Adventures: handler.NewAdventureHandler(adventureService), ...}
//	mux := routes.NewMux()
package handler
