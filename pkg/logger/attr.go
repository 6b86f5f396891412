package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ContentType records a content-type UID under the key "content_type".
func ContentType(uid string) slog.Attr {
	return slog.String("content_type", uid)
}

// Attribute records an attribute name under the key "attribute".
func Attribute(name string) slog.Attr {
	return slog.String("attribute", name)
}

// EntityID records the entity identifier under the key "entity_id".
// If id is nil, it returns an empty Attr.
func EntityID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("entity_id", id)
}

// DocumentID records the document identifier under the key "document_id".
// If id is nil, it returns an empty Attr.
func DocumentID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("document_id", id)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
