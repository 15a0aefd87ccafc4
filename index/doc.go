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


// Package index implements the multi-resolution hybrid index over
// document segments.
//
// The Hybrid type combines three retrieval signals:
//   - Vector similarity at several embedding resolutions, where coarser
//     resolutions are prefix truncations of the full embedding and finer
//     resolutions weigh more heavily
//   - Lexical relevance from a bleve full-text index aligned 1:1 with
//     segment positions
//   - A directed dependency graph used to expand hits to related segments
//
// The index is built once per document and is read-only afterward, so it
// may be read concurrently without synchronization.
package index
