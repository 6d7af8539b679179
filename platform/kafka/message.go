package kafka

// Header is a record header attached to an outgoing message.
type Header struct {
	Key   string
	Value []byte
}

func StringHeader(key, value string) Header {
	return Header{Key: key, Value: []byte(value)}
}
