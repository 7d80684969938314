// Package extractor turns sample report files into plain text. PDF
// content is extracted through the poppler pdftotext tool so the PDF
// format stays a black box; flat text formats are read directly.
package extractor
