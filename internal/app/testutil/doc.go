// Package testutil provides shared test helpers for the transcriber packages.
//
//   - mock_services.go: testify mock of the API transcription service
//   - mock_transcriber.go: testify mocks of transcription providers and provider metrics
//   - fixtures.go: upstream envelopes, audio payloads and multipart request builders
//   - logger.go: zap observer for asserting on log entries
package testutil
