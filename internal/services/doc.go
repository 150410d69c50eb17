// Package services defines the error taxonomy shared by the processing
// pipeline and its external-service clients.
//
// Errors are tagged with sentinel markers (missing credential, directory not
// found, unsupported image, recognition failed, placement failed) so the
// runner can distinguish fatal startup conditions from per-file skips without
// inspecting message strings.
package services
