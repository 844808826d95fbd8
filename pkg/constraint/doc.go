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

// Package constraint parses and evaluates version constraint expressions
// such as ">= 1.32.4" or "!= 2.0.0-rc.1" against candidate versions using
// full semantic version precedence. A bare version with no operator means
// equal precedence, so "v1.2.3" is satisfied by "1.2.3+build".
package constraint
