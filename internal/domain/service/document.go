package service

import "context"

// Document kinds reported by the analyzer.
const (
	DocumentPDF     = "pdf"
	DocumentDocx    = "docx"
	DocumentDoc     = "doc"
	DocumentPPTX    = "pptx"
	DocumentExcel   = "excel"
	DocumentImage   = "image"
	DocumentUnknown = "unknown"
)

// DocumentInfo is the analyzer's view of an upload.
type DocumentInfo struct {
	PageCount int    `json:"pageCount"`
	Type      string `json:"type"`
}

// UnknownDocument is the fallback used whenever analysis fails.
func UnknownDocument() DocumentInfo {
	return DocumentInfo{PageCount: 1, Type: DocumentUnknown}
}

// DocumentAnalyzer detects the kind and page count of a file.
type DocumentAnalyzer interface {
	// Analyze never fails; it returns UnknownDocument when detection is impossible.
	Analyze(ctx context.Context, name string, data []byte) DocumentInfo
}

// DocumentConverter converts office documents to PDF.
type DocumentConverter interface {
	ConvertToPDF(ctx context.Context, name string, data []byte) ([]byte, error)
}
