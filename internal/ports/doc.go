// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [SequenceSource]: Searches and fetches sequence records upstream
//   - [RecordExporter]: Writes record collections to artifact files
//   - [ManifestRepository]: Persists and loads run manifests
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// The concrete implementations live in pkg/entrez, pkg/export, and
// internal/adapters/fs.
//
// This separation enables:
//   - Testing the pipeline with fake implementations
//   - Swapping infrastructure without changing business logic
//   - Clear boundaries and dependency direction
package ports
