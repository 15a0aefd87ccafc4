// Copyright 2025 Poiesic Systems
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


// Package storage defines the segment persistence boundary and its
// serialization format.
//
// One SegmentStore holds the segments of exactly one document, addressed
// by their position in the segmented document. The store lives as long
// as the document's index cache entry; evicting the entry closes the
// store and discards the segments. Indices are not persisted across
// restarts, so the default backend keeps everything in memory.
package storage
