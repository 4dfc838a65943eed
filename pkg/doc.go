// Package hwp provides the Reader and Writer facades for HWP 5.0
// documents (spec.md §4.6): Read parses CFB bytes into a
// document.Document, Write serializes one back out.
//
// Basic usage:
//
//	f, err := os.Open("report.hwp")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	doc, err := hwp.Read(f)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.ParagraphsOf(0)[0].Text)
//
//	out, err := hwp.Write(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("copy.hwp", out, 0o644)
package hwp

import "github.com/hwp5/hwp/document"

// Document is an alias for document.Document, so callers of this
// package don't need a second import for the common case.
type Document = document.Document
