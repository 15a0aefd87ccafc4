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


// Package reason decides how a question gets answered.
//
// Deterministic tools handle the clause patterns that show up constantly
// in policy documents: waiting periods and dates, numeric limits and
// copays, and coverage statements that contradict each other. Every tool
// runs against the assembled context; when one produces a high-confidence
// finding the Arbiter only asks the language model to phrase that finding
// as an answer. Otherwise the model answers from the raw context.
//
// Tools are pure functions of their inputs and never call the model, so
// their results are reproducible and testable in isolation.
package reason
