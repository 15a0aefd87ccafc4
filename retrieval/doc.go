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


// Package retrieval assembles answer context from a hybrid index and a
// segment store.
//
// For a question, the Retriever runs a hybrid search, expands every hit
// through the dependency graph, and returns the hit's related segments
// ahead of the hit itself so definitions and conditions precede the
// clauses that rely on them. Each segment appears at most once across
// the whole context, earliest mention wins.
package retrieval
