// Copyright (c) 2026, The MaMMoS Project.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// HTTP client timeouts for outbound requests (vocabulary service,
// remote vocabulary and report files).
const (
	// HTTPClientTimeout is the total timeout for a single HTTP request.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the TCP connection establishment timeout.
	HTTPConnectTimeout = 10 * time.Second

	// HTTPKeepAlive is the keep-alive interval for established connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPTLSHandshakeTimeout is the TLS handshake timeout.
	HTTPTLSHandshakeTimeout = 10 * time.Second

	// HTTPResponseHeaderTimeout is the time to wait for response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is how long idle connections stay pooled.
	HTTPIdleConnTimeout = 90 * time.Second
)

// Vocabulary service request limits. A metadata document carries only
// a handful of labels, so the limit mostly guards against runaway
// batch validations sharing one client.
const (
	// VocabularyRequestsPerSecond is the sustained request rate against
	// the vocabulary service.
	VocabularyRequestsPerSecond = 10

	// VocabularyRequestBurst is the burst allowance above the sustained
	// rate.
	VocabularyRequestBurst = 5
)
