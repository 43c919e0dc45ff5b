package common

// ChannelHeaderName carries the response channel name on outbound submissions
// so the receiving side can correlate a request with its session.
const ChannelHeaderName = "X-Upload-Channel"

// FailureMarker is the substring that, when found in an inspectable response
// body, marks the upload as failed.
const FailureMarker = "error"
