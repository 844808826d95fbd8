// Copyright (c) 2026, HModding.  All rights reserved.
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

// Package errors provides structured error types for programmatic error
// handling in the outer surfaces of the module (constraint expressions,
// CLI input handling). The core semver package keeps its own sentinel
// errors instead, since parse failures there are a single well-known kind.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to parse constraint expression",
//	    cause,
//	    map[string]interface{}{
//	        "expression": expr,
//	    },
//	)
package errors
